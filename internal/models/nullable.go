package models

import (
	"bytes"
	"encoding/json"
)

// NullableInt is an update field that tells an absent key from an explicit null.
// Set is false when the key was absent; Value is nil when the key was null.
type NullableInt struct {
	Set   bool
	Value *int
}

// NewNullableInt returns a NullableInt that sets v.
func NewNullableInt(v int) NullableInt {
	return NullableInt{Set: true, Value: &v}
}

// NullInt returns a NullableInt that clears the field.
func NullInt() NullableInt {
	return NullableInt{Set: true}
}

func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n NullableInt) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
