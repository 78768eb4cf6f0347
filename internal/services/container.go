// Package services implements the record fetchers, factories and the couple composer.
package services

import (
	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/internal/models"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Actresses *Records[models.Actress]
	Actors    *Records[models.Actor]
	Couples   *CoupleComposer
	Logger    logger.Logger
	Metrics   *metrics.Metrics
}

// NewContainer wires every service on top of up.
func NewContainer(up *Upstream) *Container {
	actresses := NewActresses(up)
	actors := NewActors(up)
	return &Container{
		Actresses: actresses,
		Actors:    actors,
		Couples:   NewCoupleComposer(actresses, actors, up.Logger, up.Metrics),
		Logger:    up.Logger,
		Metrics:   up.Metrics,
	}
}
