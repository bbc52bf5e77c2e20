package expiry

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument reports a caller mistake such as an empty key or value.
	ErrInvalidArgument = errors.New("expiry: invalid argument")

	// ErrEmptyKey is returned when a write is attempted with an empty key.
	ErrEmptyKey = fmt.Errorf("%w: empty key", ErrInvalidArgument)

	// ErrEmptyValue is returned when a write is attempted with a nil or empty value.
	ErrEmptyValue = fmt.Errorf("%w: empty value", ErrInvalidArgument)

	// ErrTypeMismatch is returned by Get when the stored value is not of the requested type.
	ErrTypeMismatch = errors.New("expiry: type mismatch")
)

// TypeMismatchError describes a typed read whose requested type differs from
// the type of the stored value.
type TypeMismatchError struct {
	Key       string
	Stored    reflect.Type
	Requested reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expiry: type mismatch for key %q: stored %v, requested %v", e.Key, e.Stored, e.Requested)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// isEmpty reports whether v should be refused as a cache value: nil, a nil
// reference, or anything whose string form is empty.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return true
		}
	}
	return emptyText(v)
}

// emptyText reports whether v's Error or String method returns "". A method
// that panics counts as non-empty text.
func emptyText(v any) (empty bool) {
	defer func() {
		if recover() != nil {
			empty = false
		}
	}()

	switch x := v.(type) {
	case error:
		return x.Error() == ""
	case fmt.Stringer:
		return x.String() == ""
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}
