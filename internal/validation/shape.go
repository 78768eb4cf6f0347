// Package validation checks that untyped JSON values match the record shapes of the remote API.
//
// Inputs are values produced by encoding/json decoding into an interface{}, preferably with
// UseNumber so that integers can be told apart from fractional numbers. Every check
// short-circuits on the first violation and reports it as an error wrapping one of the
// sentinel errors below; the Is* helpers collapse that to a boolean.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/AndreaBeltramin/castfetch/internal/models"
)

// Shape violations.
var (
	ErrNotObject          = errors.New("value is not a JSON object")
	ErrMissingField       = errors.New("missing field")
	ErrWrongType          = errors.New("wrong type")
	ErrWrongLength        = errors.New("wrong number of elements")
	ErrUnknownNationality = errors.New("nationality not allowed")
)

// maxSafeInteger is the largest integer a JSON number carries exactly as a float64.
const maxSafeInteger = 1 << 53

type check func(obj map[string]any) error

func run(v any, checks []check) error {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return fmt.Errorf("%w: got %s", ErrNotObject, kindOf(v))
	}
	for _, c := range checks {
		if err := c(obj); err != nil {
			return err
		}
	}
	return nil
}

func personChecks(withID bool) []check {
	checks := make([]check, 0, 6)
	if withID {
		checks = append(checks, integer("id"))
	}
	return append(checks,
		str("name"),
		integer("birth_year"),
		optionalInteger("death_year"),
		str("biography"),
		str("image"),
	)
}

func field(obj map[string]any, name string) (any, error) {
	v, ok := obj[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	return v, nil
}

func integer(name string) check {
	return func(obj map[string]any) error {
		v, err := field(obj, name)
		if err != nil {
			return err
		}
		if !isInteger(v) {
			return fmt.Errorf("%w: %q must be an integer, got %s", ErrWrongType, name, kindOf(v))
		}
		return nil
	}
}

func optionalInteger(name string) check {
	return func(obj map[string]any) error {
		v, ok := obj[name]
		if !ok || v == nil {
			return nil
		}
		if !isInteger(v) {
			return fmt.Errorf("%w: %q must be an integer, got %s", ErrWrongType, name, kindOf(v))
		}
		return nil
	}
}

func str(name string) check {
	return func(obj map[string]any) error {
		v, err := field(obj, name)
		if err != nil {
			return err
		}
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%w: %q must be a string, got %s", ErrWrongType, name, kindOf(v))
		}
		return nil
	}
}

// stringList accepts an array of strings whose length is within [minLen, maxLen].
func stringList(name string, minLen, maxLen int) check {
	return func(obj map[string]any) error {
		v, err := field(obj, name)
		if err != nil {
			return err
		}
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%w: %q must be an array, got %s", ErrWrongType, name, kindOf(v))
		}
		if len(arr) < minLen || len(arr) > maxLen {
			if minLen == maxLen {
				return fmt.Errorf("%w: %q needs exactly %d, got %d", ErrWrongLength, name, minLen, len(arr))
			}
			return fmt.Errorf("%w: %q needs %d to %d, got %d", ErrWrongLength, name, minLen, maxLen, len(arr))
		}
		for i, el := range arr {
			if _, ok := el.(string); !ok {
				return fmt.Errorf("%w: %q[%d] must be a string, got %s", ErrWrongType, name, i, kindOf(el))
			}
		}
		return nil
	}
}

func tuple(name string, n int) check {
	return stringList(name, n, n)
}

func nationality(name string, allowed func(models.Nationality) bool) check {
	return func(obj map[string]any) error {
		v, err := field(obj, name)
		if err != nil {
			return err
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %q must be a string, got %s", ErrWrongType, name, kindOf(v))
		}
		if !allowed(models.Nationality(s)) {
			return fmt.Errorf("%w: %q", ErrUnknownNationality, s)
		}
		return nil
	}
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		// only plain integer literals decode into an int field
		_, err := n.Int64()
		return err == nil
	case float64:
		return isWhole(n)
	case int, int32, int64:
		return true
	default:
		return false
	}
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int32, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
