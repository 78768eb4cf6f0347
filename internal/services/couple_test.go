package services

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/internal/models"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

type stubCollection[T any] []T

func (s stubCollection[T]) All(context.Context) []T {
	return []T(s)
}

func newStubComposer(actresses []models.Actress, actors []models.Actor) (*CoupleComposer, *syncBuffer, *metrics.Metrics) {
	logs := &syncBuffer{}
	m := metrics.New(prometheus.NewRegistry())
	c := NewCoupleComposer(stubCollection[models.Actress](actresses), stubCollection[models.Actor](actors),
		logger.NewWithOutput("debug", logs), m)
	return c, logs, m
}

func TestCreateRandomCoupleUsesPick(t *testing.T) {
	a1, a2 := sampleActress(), sampleActress()
	a2.ID = 13
	b1, b2, b3 := sampleActor(), sampleActor(), sampleActor()
	b2.ID, b3.ID = 35, 36

	c, _, m := newStubComposer([]models.Actress{a1, a2}, []models.Actor{b1, b2, b3})
	var sizes []int
	c.pick = func(n int) int {
		sizes = append(sizes, n)
		return n - 1
	}

	couple := c.CreateRandomCouple(context.Background())
	require.NotNil(t, couple)
	assert.Equal(t, 13, couple.Actress.ID)
	assert.Equal(t, 36, couple.Actor.ID)
	assert.Equal(t, []int{2, 3}, sizes)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Couples.WithLabelValues("paired")))
}

func TestCreateRandomCoupleMembersComeFromCollections(t *testing.T) {
	actresses := []models.Actress{sampleActress()}
	actors := []models.Actor{sampleActor()}
	c, _, _ := newStubComposer(actresses, actors)

	for range 10 {
		couple := c.CreateRandomCouple(context.Background())
		require.NotNil(t, couple)
		assert.Contains(t, actresses, couple.Actress)
		assert.Contains(t, actors, couple.Actor)
	}
}

func TestCreateRandomCoupleNoPairing(t *testing.T) {
	tests := []struct {
		name      string
		actresses []models.Actress
		actors    []models.Actor
	}{
		{"no actresses", nil, []models.Actor{sampleActor()}},
		{"no actors", []models.Actress{sampleActress()}, []models.Actor{}},
		{"both empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, logs, m := newStubComposer(tt.actresses, tt.actors)

			assert.Nil(t, c.CreateRandomCouple(context.Background()))
			assert.Contains(t, logs.String(), "[Couple] no pairing possible")
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Couples.WithLabelValues("no_pairing")))
		})
	}
}

func TestContainerComposesFromUpstream(t *testing.T) {
	api := &fakeAPI{
		actresses: []any{actressFixture(1)},
		actors:    []any{actorFixture(2)},
	}
	up, _ := newTestUpstream(t, api)
	c := NewContainer(up)

	assert.Equal(t, "Actresses", c.Actresses.Name())
	assert.Equal(t, "Actors", c.Actors.Name())

	couple := c.Couples.CreateRandomCouple(context.Background())
	require.NotNil(t, couple)
	assert.Equal(t, 1, couple.Actress.ID)
	assert.Equal(t, 2, couple.Actor.ID)
}

func TestContainerUpstreamDownMeansNoCouple(t *testing.T) {
	up, logs := newTestUpstream(t, &fakeAPI{status: map[string]int{"/actors": 503}})

	couple := NewContainer(up).Couples.CreateRandomCouple(context.Background())
	assert.Nil(t, couple)
	assert.Contains(t, logs.String(), "[Actors] failed to fetch collection")
	assert.Contains(t, logs.String(), "no pairing possible")
}
