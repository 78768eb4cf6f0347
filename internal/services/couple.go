package services

import (
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/internal/models"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

// Collection is the soft-failing bulk fetch a composer draws from.
type Collection[T any] interface {
	All(ctx context.Context) []T
}

// CoupleComposer pairs a random actress with a random actor.
type CoupleComposer struct {
	actresses Collection[models.Actress]
	actors    Collection[models.Actor]
	logger    logger.Logger
	metrics   *metrics.Metrics

	// pick returns a uniform index in [0, n)
	pick func(n int) int
}

// NewCoupleComposer creates a composer drawing from the given collections.
func NewCoupleComposer(actresses Collection[models.Actress], actors Collection[models.Actor], log logger.Logger, m *metrics.Metrics) *CoupleComposer {
	return &CoupleComposer{
		actresses: actresses,
		actors:    actors,
		logger:    log,
		metrics:   m,
		pick:      rand.IntN,
	}
}

// CreateRandomCouple loads both collections concurrently and draws one record from each.
// It returns nil when either collection is empty.
func (c *CoupleComposer) CreateRandomCouple(ctx context.Context) *models.Couple {
	var (
		actresses []models.Actress
		actors    []models.Actor
		g         errgroup.Group
	)
	g.Go(func() error {
		actresses = c.actresses.All(ctx)
		return nil
	})
	g.Go(func() error {
		actors = c.actors.All(ctx)
		return nil
	})
	g.Wait()

	if len(actresses) == 0 || len(actors) == 0 {
		c.logger.Warnf("[Couple] no pairing possible: %d actresses, %d actors", len(actresses), len(actors))
		c.metrics.IncCouple("no_pairing")
		return nil
	}

	c.metrics.IncCouple("paired")
	return &models.Couple{
		Actress: actresses[c.pick(len(actresses))],
		Actor:   actors[c.pick(len(actors))],
	}
}
