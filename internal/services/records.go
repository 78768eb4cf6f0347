package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/AndreaBeltramin/castfetch/internal/constants"
	apperrors "github.com/AndreaBeltramin/castfetch/internal/errors"
	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/internal/models"
	"github.com/AndreaBeltramin/castfetch/internal/validation"
)

// Records fetches and validates one record variant of the remote API.
//
// Fetch and FetchAll report failures as errors. Get, All and GetMany never do:
// a failed fetch is logged and becomes nil (single record) or an empty slice (collection).
type Records[T any] struct {
	name     string
	endpoint string
	validate func(any) error
	up       *Upstream
}

// NewActresses returns the service for /actresses.
func NewActresses(up *Upstream) *Records[models.Actress] {
	return &Records[models.Actress]{
		name:     "Actresses",
		endpoint: constants.ActressesEndpoint,
		validate: validation.Actress,
		up:       up,
	}
}

// NewActors returns the service for /actors.
func NewActors(up *Upstream) *Records[models.Actor] {
	return &Records[models.Actor]{
		name:     "Actors",
		endpoint: constants.ActorsEndpoint,
		validate: validation.Actor,
		up:       up,
	}
}

// Name returns the display name used in logs.
func (r *Records[T]) Name() string {
	return r.name
}

// Fetch retrieves and validates the record with the given id.
func (r *Records[T]) Fetch(ctx context.Context, id int) (*T, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidIDError(id)
	}

	url := r.up.url(r.endpoint, strconv.Itoa(id))
	raw, body, err := r.up.getJSON(ctx, r.endpoint, url)
	if err != nil {
		return nil, err
	}
	return r.decodeRecord(url, raw, body)
}

// FetchAll retrieves the whole collection, dropping records that fail validation.
// A body that is not a JSON array is an error.
func (r *Records[T]) FetchAll(ctx context.Context) ([]T, error) {
	url := r.up.url(r.endpoint)
	raw, body, err := r.up.getJSON(ctx, r.endpoint, url)
	if err != nil {
		return nil, err
	}

	arr, ok := raw.([]any)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Errorf("%w: expected JSON array", apperrors.ErrMalformedPayload))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apperrors.NewDecodeError(url, err)
	}

	records := make([]T, 0, len(arr))
	for i, v := range arr {
		rec, err := r.decodeRecord(url, v, items[i])
		if err != nil {
			r.up.Logger.Debugf("[%s] dropping invalid record at index %d: %v", r.name, i, err)
			continue
		}
		records = append(records, *rec)
	}
	r.up.Metrics.AddDropped(r.endpoint, len(arr)-len(records))
	return records, nil
}

// decodeRecord validates raw, decodes data into T and validates the typed result again,
// so the returned record is exactly what passed validation.
func (r *Records[T]) decodeRecord(url string, raw any, data []byte) (*T, error) {
	if err := r.validate(raw); err != nil {
		return nil, apperrors.NewValidationError(err)
	}

	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, apperrors.NewDecodeError(url, err)
	}
	if err := validation.CheckEncoded(rec, r.validate); err != nil {
		return nil, apperrors.NewValidationError(err)
	}
	return &rec, nil
}

// Get is Fetch with failures logged and turned into nil.
func (r *Records[T]) Get(ctx context.Context, id int) *T {
	rec, err := r.Fetch(ctx, id)
	r.observe("get", err)
	if err != nil {
		r.up.Logger.Errorf("[%s] failed to fetch record %d: %v", r.name, id, err)
		return nil
	}
	return rec
}

// All is FetchAll with failures logged and turned into an empty slice.
func (r *Records[T]) All(ctx context.Context) []T {
	records, err := r.FetchAll(ctx)
	r.observe("all", err)
	if err != nil {
		r.up.Logger.Errorf("[%s] failed to fetch collection: %v", r.name, err)
		return []T{}
	}
	return records
}

// GetMany fetches every id concurrently. The result has one entry per id, in input order;
// entries whose fetch failed are nil.
func (r *Records[T]) GetMany(ctx context.Context, ids []int) []*T {
	out := make([]*T, len(ids))

	var g errgroup.Group
	if r.up.MaxConcurrency > 0 {
		g.SetLimit(r.up.MaxConcurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			out[i] = r.Get(ctx, id)
			return nil
		})
	}
	g.Wait()

	return out
}

func (r *Records[T]) observe(operation string, err error) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = apperrors.TypeOf(err)
		if outcome == "" {
			outcome = metrics.OutcomeUnknown
		}
	}
	r.up.Metrics.IncFetch(r.endpoint, operation, outcome)
}
