// Package handlers implements the HTTP facade over the record services.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndreaBeltramin/castfetch/internal/constants"
	"github.com/AndreaBeltramin/castfetch/internal/models"
	"github.com/AndreaBeltramin/castfetch/internal/services"
	"github.com/AndreaBeltramin/castfetch/internal/validation"
)

// Handler handles HTTP requests for actresses, actors and couples.
type Handler struct {
	services *services.Container
}

// New creates a new Handler backed by the provided services.
func New(services *services.Container) *Handler {
	return &Handler{services: services}
}

// RegisterRoutes registers all HTTP routes of the facade.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.handleHealth)

	actresses := &recordRoutes[models.Actress, models.ActressDraft, models.ActressUpdate]{
		records:       h.services.Actresses,
		validate:      validation.Actress,
		validateDraft: validation.ActressDraft,
		create:        services.CreateActress,
		update:        services.UpdateActress,
		logger:        h.services.Logger,
	}
	actresses.register(r.Group("/" + constants.ActressesEndpoint))

	actors := &recordRoutes[models.Actor, models.ActorDraft, models.ActorUpdate]{
		records:       h.services.Actors,
		validate:      validation.Actor,
		validateDraft: validation.ActorDraft,
		create:        services.CreateActor,
		update:        services.UpdateActor,
		logger:        h.services.Logger,
	}
	actors.register(r.Group("/" + constants.ActorsEndpoint))

	r.GET("/couple", h.handleCouple)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    constants.AppName,
		"version": constants.AppVersion,
	})
}

func (h *Handler) handleCouple(c *gin.Context) {
	couple := h.services.Couples.CreateRandomCouple(c.Request.Context())
	if couple == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pairing possible"})
		return
	}
	c.JSON(http.StatusOK, couple)
}
