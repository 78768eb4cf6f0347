package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/AndreaBeltramin/castfetch/internal/errors"
	"github.com/AndreaBeltramin/castfetch/internal/validation"
)

var errMissingIDs = errors.New("ids query parameter is required")

// parseID reads a record id from a path parameter.
// Non-positive ids parse fine; the services reject them as INVALID_ID.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// parseIDs reads a comma-separated id list such as "1,2,3".
func parseIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errMissingIDs
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// checkShape decodes body and runs validate on it.
func checkShape(body []byte, validate func(any) error) error {
	v, err := validation.Decode(body)
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrMalformedPayload, err)
	}
	return nil
}

// fetchErrorStatus maps a fetch failure to the status returned to the client.
func fetchErrorStatus(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeInvalidID:
		return http.StatusBadRequest
	case apperrors.ErrorTypeHTTPStatus:
		if apperrors.StatusCode(err) == http.StatusNotFound {
			return http.StatusNotFound
		}
	}
	return http.StatusBadGateway
}
