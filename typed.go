package expiry

import "reflect"

// Get returns the live value stored under key as a T.
// A missing or expired key yields the zero T, false and a nil error. A live
// value of another type yields a *TypeMismatchError.
func Get[T any](c *Cache, key string) (T, bool, error) {
	var zero T

	v, ok := c.Get(key)
	if !ok {
		return zero, false, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, false, &TypeMismatchError{
			Key:       key,
			Stored:    reflect.TypeOf(v),
			Requested: reflect.TypeFor[T](),
		}
	}
	return t, true, nil
}

// MustGet is like Get but treats a type mismatch as a miss.
func MustGet[T any](c *Cache, key string) T {
	v, _, _ := Get[T](c, key)
	return v
}
