package util

// ValueOrDefault dereferences value, or returns fallback when it is nil.
func ValueOrDefault[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
