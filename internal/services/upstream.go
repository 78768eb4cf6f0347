package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AndreaBeltramin/castfetch/internal/config"
	"github.com/AndreaBeltramin/castfetch/internal/constants"
	apperrors "github.com/AndreaBeltramin/castfetch/internal/errors"
	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/internal/validation"
	"github.com/AndreaBeltramin/castfetch/pkg/httputil"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
	"github.com/AndreaBeltramin/castfetch/pkg/ratelimiter"
)

// Upstream is the connection to the remote API shared by every record service.
type Upstream struct {
	BaseURL     string
	HTTPClient  *http.Client
	RateLimiter ratelimiter.RateLimiter
	Logger      logger.Logger
	Metrics     *metrics.Metrics

	// MaxConcurrency bounds the fetches of one batch; zero means unbounded.
	MaxConcurrency int
}

// NewUpstream builds an Upstream from the application configuration.
func NewUpstream(cfg *config.Config, log logger.Logger, m *metrics.Metrics) *Upstream {
	return &Upstream{
		BaseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		HTTPClient:     httputil.NewHTTPClient(cfg.RequestTimeout),
		RateLimiter:    ratelimiter.NewTokenBucket(cfg.RateBurst, cfg.RateLimit),
		Logger:         log,
		Metrics:        m,
		MaxConcurrency: cfg.MaxConcurrency,
	}
}

func (u *Upstream) url(parts ...string) string {
	return u.BaseURL + "/" + strings.Join(parts, "/")
}

// getJSON performs a GET and decodes the body into an untyped value.
// The raw body is returned too so callers can decode into concrete types after validation.
func (u *Upstream) getJSON(ctx context.Context, resource, url string) (any, []byte, error) {
	if u.RateLimiter != nil {
		if err := u.RateLimiter.Wait(ctx); err != nil {
			return nil, nil, apperrors.NewTransportError(url, err)
		}
	}

	req, err := httputil.NewJSONRequest(ctx, url)
	if err != nil {
		return nil, nil, apperrors.NewTransportError(url, err)
	}

	start := time.Now()
	resp, err := u.HTTPClient.Do(req)
	u.Metrics.ObserveLatency(resource, time.Since(start))
	if err != nil {
		return nil, nil, apperrors.NewTransportError(url, err)
	}
	defer resp.Body.Close()

	if !httputil.IsSuccess(resp.StatusCode) {
		// drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, nil, apperrors.NewHTTPStatusError(url, resp.StatusCode, reasonPhrase(resp))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes))
	if err != nil {
		return nil, nil, apperrors.NewTransportError(url, fmt.Errorf("failed to read body: %w", err))
	}

	raw, err := validation.Decode(body)
	if err != nil {
		return nil, nil, apperrors.NewDecodeError(url, err)
	}
	return raw, body, nil
}

// reasonPhrase extracts the text after the status code, falling back to the standard text.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
