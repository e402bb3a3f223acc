// Package optional provides a presence-tagged value for partial updates, so a
// caller can write zero values such as 0 or "" without them being mistaken
// for "not supplied".
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds either nothing or a value of T.
type Value[T any] struct {
	value T
	set   bool
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// None returns an unset Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet reports whether a value is present.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Get returns the value and whether it was present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// OrElse returns the value if present and fallback otherwise.
func (v Value[T]) OrElse(fallback T) T {
	if v.set {
		return v.value
	}
	return fallback
}

// UnmarshalJSON marks the value as set whenever the key appears in the
// document. An explicit null sets the zero value.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		v.value = zero
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON writes the value, or null when unset.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
