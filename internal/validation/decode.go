package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData means the input holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Decode parses exactly one JSON value into the untyped form the validators expect.
// Numbers are kept as json.Number.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

// CheckEncoded runs validate on the JSON encoding of v.
// Typed decoding matches keys case-insensitively, so a value decoded from an accepted payload
// can still differ from what the validator saw; checking the encoding covers what is returned.
func CheckEncoded(v any, validate func(any) error) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	raw, err := Decode(data)
	if err != nil {
		return err
	}
	return validate(raw)
}
