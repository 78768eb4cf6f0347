package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AndreaBeltramin/castfetch/internal/errors"
	"github.com/AndreaBeltramin/castfetch/internal/services"
	"github.com/AndreaBeltramin/castfetch/internal/validation"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

// recordRoutes serves one record variant. T is the record, D its draft and U its update.
type recordRoutes[T, D, U any] struct {
	records       *services.Records[T]
	validate      func(any) error
	validateDraft func(any) error
	create        func(D) T
	update        func(T, U) T
	logger        logger.Logger
}

func (rr *recordRoutes[T, D, U]) register(g *gin.RouterGroup) {
	g.GET("", rr.handleList)
	g.GET("/batch", rr.handleBatch)
	g.GET("/:id", rr.handleGet)
	g.POST("", rr.handleCreate)
	g.PATCH("/:id", rr.handleUpdate)
}

func (rr *recordRoutes[T, D, U]) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, rr.records.All(c.Request.Context()))
}

func (rr *recordRoutes[T, D, U]) handleBatch(c *gin.Context) {
	ids, err := parseIDs(c.Query("ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rr.records.GetMany(c.Request.Context(), ids))
}

func (rr *recordRoutes[T, D, U]) handleGet(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := rr.records.Fetch(c.Request.Context(), id)
	if err != nil {
		rr.logger.Warnf("[%s] fetch of record %d failed: %v", rr.records.Name(), id, err)
		c.JSON(fetchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (rr *recordRoutes[T, D, U]) handleCreate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}
	if err := checkShape(body, rr.validateDraft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var draft D
	if err := json.Unmarshal(body, &draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validation.CheckEncoded(draft, rr.validateDraft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("%w: %w", apperrors.ErrMalformedPayload, err).Error()})
		return
	}

	rec := rr.create(draft)
	rr.logger.Debugf("[%s] created record from draft", rr.records.Name())
	c.JSON(http.StatusCreated, rec)
}

func (rr *recordRoutes[T, D, U]) handleUpdate(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var changes U
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := rr.records.Fetch(c.Request.Context(), id)
	if err != nil {
		rr.logger.Warnf("[%s] fetch of record %d failed: %v", rr.records.Name(), id, err)
		c.JSON(fetchErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	updated := rr.update(*existing, changes)

	// the merged record must still be a valid record, e.g. an unknown nationality is refused
	if err := validation.CheckEncoded(updated, rr.validate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("%w: %w", apperrors.ErrMalformedPayload, err).Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
