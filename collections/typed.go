package collections

import "reflect"

// FindUnique returns the single element of items for which match returns
// true. If no element or more than one element matches, the result is the
// zero value and false: an ambiguous match is treated as no match.
//
// A nil match matches every element, so FindUnique then succeeds only when
// items has exactly one element.
func FindUnique[E any](items []E, match func(E) bool) (E, bool) {
	var (
		value E
		found bool
	)
	for _, item := range items {
		if match != nil && !match(item) {
			continue
		}
		if found {
			var zero E
			return zero, false
		}
		value, found = item, true
	}
	return value, found
}

// FindValueOfType returns the single element of items whose dynamic type is
// assignable to T. T may be an interface type. nil elements never match.
//
//	collections.FindValueOfType[int]([]any{"a", 1, "b"})  // → 1, true
//	collections.FindValueOfType[string]([]any{"a", "b"})  // → "", false
func FindValueOfType[T any](items []any) (T, bool) {
	v, ok := FindUnique(items, func(item any) bool {
		_, is := item.(T)
		return is
	})
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// FindValueOfReflectType is [FindValueOfType] with the type given at run
// time. A nil typ matches every element.
func FindValueOfReflectType(items []any, typ reflect.Type) (any, bool) {
	var match func(any) bool
	if typ != nil {
		match = func(item any) bool { return isInstance(typ, item) }
	}
	return FindUnique(items, match)
}

// FindValueOfTypes tries each of types in priority order and returns the
// first unique match found by [FindValueOfReflectType]. It returns nil and
// false when items or types is empty, or no type has a unique match.
func FindValueOfTypes(items []any, types ...reflect.Type) (any, bool) {
	if len(items) == 0 || len(types) == 0 {
		return nil, false
	}
	for _, typ := range types {
		if v, ok := FindValueOfReflectType(items, typ); ok {
			return v, true
		}
	}
	return nil, false
}

// isInstance reports whether v is a non-nil value whose dynamic type is
// assignable to typ.
func isInstance(typ reflect.Type, v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(typ)
}
