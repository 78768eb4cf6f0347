package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

// syncBuffer is a log sink safe for the concurrent writes of batch fetches.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func actressFixture(id int) map[string]any {
	return map[string]any{
		"id":                id,
		"name":              fmt.Sprintf("Actress %d", id),
		"birth_year":        1970 + id,
		"biography":         "A stage and screen actress.",
		"image":             fmt.Sprintf("https://img.test/actresses/%d.jpg", id),
		"most_famous_movie": []string{"First", "Second", "Third"},
		"awards":            "Two BAFTAs",
		"nationality":       "British",
	}
}

func actorFixture(id int) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        fmt.Sprintf("Actor %d", id),
		"birth_year":  1950 + id,
		"death_year":  2015,
		"biography":   "A character actor.",
		"image":       fmt.Sprintf("https://img.test/actors/%d.jpg", id),
		"known_for":   []string{"One", "Two", "Three"},
		"awards":      []string{"Golden Globe"},
		"nationality": "Irish",
	}
}

// fakeAPI serves /actresses and /actors from in-memory payloads.
// Payloads are written as-is, so tests can plant invalid records.
type fakeAPI struct {
	actresses []any
	actors    []any

	// per-path overrides: status code and raw body
	status map[string]int
	raw    map[string]string

	// delay is applied to item requests before responding
	delay func(id int) time.Duration

	hits atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	path := r.URL.Path

	if code, ok := f.status[path]; ok {
		w.WriteHeader(code)
		return
	}
	if body, ok := f.raw[path]; ok {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
		return
	}

	var (
		collection []any
		idPart     string
	)
	switch {
	case path == "/actresses":
		collection = f.actresses
	case path == "/actors":
		collection = f.actors
	case strings.HasPrefix(path, "/actresses/"):
		collection, idPart = f.actresses, strings.TrimPrefix(path, "/actresses/")
	case strings.HasPrefix(path, "/actors/"):
		collection, idPart = f.actors, strings.TrimPrefix(path, "/actors/")
	default:
		http.NotFound(w, r)
		return
	}

	if idPart == "" {
		writeJSON(w, collection)
		return
	}

	id, err := strconv.Atoi(idPart)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if f.delay != nil {
		time.Sleep(f.delay(id))
	}
	for _, item := range collection {
		if obj, ok := item.(map[string]any); ok && obj["id"] == id {
			writeJSON(w, obj)
			return
		}
	}
	http.NotFound(w, r)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// newTestUpstream starts api behind an httptest server and returns an Upstream pointing at it.
func newTestUpstream(t *testing.T, api http.Handler) (*Upstream, *syncBuffer) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	logs := &syncBuffer{}
	return &Upstream{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Logger:     logger.NewWithOutput("debug", logs),
		Metrics:    metrics.New(prometheus.NewRegistry()),
	}, logs
}
