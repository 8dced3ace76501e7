package collections

import "reflect"

// IsEmpty reports whether s is nil or has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has at least one element.
func IsNotEmpty[S ~[]E, E any](s S) bool {
	return !IsEmpty(s)
}

// IsEmptyMap reports whether m is nil or has no entries.
func IsEmptyMap[M ~map[K]V, K comparable, V any](m M) bool {
	return len(m) == 0
}

// IsNotEmptyMap reports whether m has at least one entry.
func IsNotEmptyMap[M ~map[K]V, K comparable, V any](m M) bool {
	return !IsEmptyMap(m)
}

// IsEmptyArray reports whether v is an array, slice or pointer to an array
// with no elements. A nil v, a nil pointer, or a value of any other kind is
// empty as well.
func IsEmptyArray(v any) bool {
	rv, ok := arrayValue(v)
	return !ok || rv.Len() == 0
}

// IsNotEmptyArray reports whether v is an array, slice or pointer to an
// array holding at least one element.
func IsNotEmptyArray(v any) bool {
	return !IsEmptyArray(v)
}

// arrayValue unwraps v into an indexable reflect.Value. It returns false if v
// is nil or is not backed by an array or slice.
func arrayValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Array:
		return rv, true
	case reflect.Slice:
		return rv, !rv.IsNil()
	default:
		return reflect.Value{}, false
	}
}
