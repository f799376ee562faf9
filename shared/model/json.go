package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores a nested value in a jsonb column while marshalling as the plain value.
type JSON[T any] struct {
	Val T
}

// NewJSON wraps val for a jsonb column.
func NewJSON[T any](val T) JSON[T] {
	return JSON[T]{Val: val}
}

// Value implements driver.Valuer.
func (j JSON[T]) Value() (driver.Value, error) {
	raw, err := json.Marshal(j.Val)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}

	return raw, nil
}

// Scan implements sql.Scanner for []byte and string sources.
func (j *JSON[T]) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		var zero T
		j.Val = zero

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	if err := json.Unmarshal(raw, &j.Val); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}

	return nil
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Val)
}

func (j *JSON[T]) UnmarshalJSON(raw []byte) error {
	return json.Unmarshal(raw, &j.Val)
}
