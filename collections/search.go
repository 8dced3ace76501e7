package collections

import (
	"iter"
	"reflect"
)

// Contains reports whether seq yields a value equal to element. Values are
// compared deeply, so two nils are equal and distinct pointers to equal
// structs are equal too. Iteration stops at the first match.
//
// For identity comparison use [ContainsInstance].
func Contains[T any](seq iter.Seq[T], element T) bool {
	if seq == nil {
		return false
	}
	for v := range seq {
		if valueEqual(v, element) {
			return true
		}
	}
	return false
}

// ContainsEnumeration is [Contains] over a one-shot cursor. The enumeration
// is consumed up to and including the first match.
func ContainsEnumeration[T any](e Enumeration[T], element T) bool {
	return Contains(All(e), element)
}

// ContainsInstance reports whether items holds the very pointer element,
// rather than merely a pointer to an equal value.
func ContainsInstance[T any](items []*T, element *T) bool {
	for _, v := range items {
		if v == element {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any element of candidates is present in
// source. It returns false when either side is empty.
func ContainsAny[T comparable](source, candidates []T) bool {
	_, ok := FindFirstMatch(source, candidates)
	return ok
}

// FindFirstMatch returns the first element of candidates, in candidates'
// order, that is present in source. It returns the zero value and false if
// there is none or either side is empty.
//
// Membership is tested with ==. A value whose dynamic type cannot be
// compared, such as a slice held in an interface, is equal to nothing.
//
//	collections.FindFirstMatch([]int{2, 4, 6}, []int{5, 4, 3}) // → 4, true
func FindFirstMatch[T comparable](source, candidates []T) (T, bool) {
	var zero T
	if len(source) == 0 || len(candidates) == 0 {
		return zero, false
	}
	if !hashSafe(reflect.TypeFor[T]()) {
		for _, c := range candidates {
			for _, v := range source {
				if safeEqual(v, c) {
					return c, true
				}
			}
		}
		return zero, false
	}
	set := make(map[T]struct{}, len(source))
	for _, v := range source {
		set[v] = struct{}{}
	}
	for _, c := range candidates {
		if _, found := set[c]; found {
			return c, true
		}
	}
	return zero, false
}

// ContainsAnyKey reports whether any element of candidates is a key of
// source. Use it for set-shaped maps such as map[T]struct{}. It returns
// false when either side is empty.
func ContainsAnyKey[K comparable, V any](source map[K]V, candidates []K) bool {
	_, ok := FindFirstMatchKey(source, candidates)
	return ok
}

// FindFirstMatchKey returns the first element of candidates, in candidates'
// order, that is a key of source. It returns the zero value and false if
// there is none or either side is empty.
func FindFirstMatchKey[K comparable, V any](source map[K]V, candidates []K) (K, bool) {
	var zero K
	if len(source) == 0 || len(candidates) == 0 {
		return zero, false
	}
	safe := hashSafe(reflect.TypeFor[K]())
	for _, c := range candidates {
		if safe || hashable(c) {
			if _, found := source[c]; found {
				return c, true
			}
		}
	}
	return zero, false
}

// hashSafe reports whether every value of type t can be hashed and compared
// without a run-time panic. Types holding an interface anywhere may not.
func hashSafe(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return hashSafe(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !hashSafe(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return t.Comparable()
	}
}

// safeEqual reports a == b, treating a comparison that would panic as false.
func safeEqual[T comparable](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// hashable reports whether v can be used as a map key without panicking.
func hashable[T comparable](v T) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[T]struct{}{v: {}}
	return true
}

func valueEqual[T any](a, b T) bool {
	if isNil(a) && isNil(b) {
		return true
	}
	return reflect.DeepEqual(a, b)
}
