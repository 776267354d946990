package store

import (
	"encoding/json"
	"fmt"
)

// GetTyped decodes the value stored under key into T. A miss or a value
// that does not decode as T returns the zero value and false.
func GetTyped[T any](s *Store, key string) (T, bool) {
	var zero T
	data, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false
	}
	return v, true
}

// PutTyped encodes value as JSON and stores it under key.
func PutTyped[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal typed value for %q: %w", key, err)
	}
	return s.Put(key, data)
}
