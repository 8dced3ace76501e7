package collections

import "reflect"

// HasUniqueObject reports whether items holds one or more references to a
// single instance. Pointers are compared by identity, so two pointers to
// equal values do not count as the same object.
//
// An empty items returns false.
func HasUniqueObject[T any](items []*T) bool {
	if len(items) == 0 {
		return false
	}
	first := items[0]
	for _, v := range items[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// FindCommonElementType returns the dynamic type shared by every non-nil
// element of items. It returns nil if the types differ, or if items holds
// no non-nil element.
func FindCommonElementType(items []any) reflect.Type {
	var candidate reflect.Type
	for _, v := range items {
		if v == nil {
			continue
		}
		t := reflect.TypeOf(v)
		if candidate == nil {
			candidate = t
		} else if candidate != t {
			return nil
		}
	}
	return candidate
}
