package collections

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & indexing
// ─────────────────────────────────────────────────────────────────────────────

// ToMap builds a map from keyBuilder(e) to e for every element of elements.
// When several elements share a key, the last one wins.
//
// A nil keyBuilder yields an empty map.
//
//	byID := collections.ToMap(users, func(u User) int { return u.ID })
func ToMap[E any, K comparable](elements []E, keyBuilder func(E) K) map[K]E {
	if len(elements) == 0 || keyBuilder == nil {
		return map[K]E{}
	}
	out := make(map[K]E, len(elements))
	for _, e := range elements {
		out[keyBuilder(e)] = e
	}
	return out
}

// ToMapList groups elements by keyFunc(e). Each group keeps the relative
// order of elements. A nil keyFunc yields an empty map.
//
//	collections.ToMapList([]int{1, 2, 3, 4}, func(n int) int { return n % 2 })
//	// → map[0:[2 4] 1:[1 3]]
func ToMapList[E any, K comparable](elements []E, keyFunc func(E) K) map[K][]E {
	return ToMapListBy(elements, keyFunc, func(e E) E { return e })
}

// ToMapListBy groups valueFunc(e) by keyFunc(e) for every element. Each
// group keeps the relative order of elements. A nil keyFunc or valueFunc
// yields an empty map.
func ToMapListBy[E any, K comparable, V any](elements []E, keyFunc func(E) K, valueFunc func(E) V) map[K][]V {
	if len(elements) == 0 || keyFunc == nil || valueFunc == nil {
		return map[K][]V{}
	}
	groups := make(map[K][]V)
	for _, e := range elements {
		k := keyFunc(e)
		groups[k] = append(groups[k], valueFunc(e))
	}
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & selection
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new slice holding the elements of source that satisfy
// predicate, in their original order. A nil predicate yields an empty slice.
func Filter[S ~[]E, E any](source S, predicate func(E) bool) S {
	if len(source) == 0 || predicate == nil {
		return S{}
	}
	out := make(S, 0, len(source))
	for _, e := range source {
		if predicate(e) {
			out = append(out, e)
		}
	}
	return out
}

// SelectList applies fn to every element of source and returns the
// results in order, nil results included.
func SelectList[E, V any](source []E, fn func(E) V) []V {
	return Select(source, fn, true)
}

// SelectNotNullList applies fn to every element of source and returns the
// non-nil results in order.
func SelectNotNullList[E, V any](source []E, fn func(E) V) []V {
	return Select(source, fn, false)
}

// Select applies fn to every element of source and returns the results in
// order. A result is nil when it is a nil pointer, interface, map, slice,
// channel or func; such results are kept only if allowNil is true.
//
// A nil fn yields an empty slice.
func Select[E, V any](source []E, fn func(E) V, allowNil bool) []V {
	if len(source) == 0 || fn == nil {
		return []V{}
	}
	out := make([]V, 0, len(source))
	for _, e := range source {
		v := fn(e)
		if allowNil || !isNil(v) {
			out = append(out, v)
		}
	}
	return out
}

// SelectListWithIndex applies fn to every element of source together with
// its zero-based position and returns the results in order.
//
//	collections.SelectListWithIndex([]string{"x", "y"}, func(s string, i int) string {
//	    return strconv.Itoa(i) + ":" + s
//	}) // → ["0:x" "1:y"]
func SelectListWithIndex[E, V any](source []E, fn func(E, int) V) []V {
	if len(source) == 0 || fn == nil {
		return []V{}
	}
	out := make([]V, len(source))
	for i, e := range source {
		out[i] = fn(e, i)
	}
	return out
}

// ForEach calls action once for every element of collection, in order.
func ForEach[E any](collection []E, action func(E)) {
	if action == nil {
		return
	}
	for _, e := range collection {
		action(e)
	}
}

// isNil reports whether v is nil or holds a nil pointer, map, slice,
// channel or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
