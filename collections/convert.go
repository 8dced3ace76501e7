package collections

import (
	"fmt"
	"iter"
	"reflect"
)

// ArrayToList converts source into a new []any holding its elements in
// order. source may be any array, slice or pointer to an array, including
// primitive-backed ones such as [4]int or []byte.
//
// A nil source yields an empty slice. A source that is not array-like is
// wrapped as a single-element slice:
//
//	collections.ArrayToList([3]int{1, 2, 3}) // → []any{1, 2, 3}
//	collections.ArrayToList("x")             // → []any{"x"}
func ArrayToList(source any) []any {
	if source == nil {
		return []any{}
	}
	rv, ok := arrayValue(source)
	if !ok {
		if isNil(source) {
			return []any{}
		}
		return []any{source}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ToArray drains e into a new slice. A nil e yields an empty slice.
func ToArray[T any](e Enumeration[T]) []T {
	return SeqToArray(All(e))
}

// SeqToArray collects every element of seq into a new slice. A nil seq
// yields an empty slice.
func SeqToArray[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	if seq == nil {
		return out
	}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// ToArrayOf drains e into a new slice whose element type is A, typically an
// interface implemented by T:
//
//	names, err := collections.ToArrayOf[fmt.Stringer](enum)
//
// It returns [ErrIllegalArgument] if an element cannot be stored as an A.
// The enumeration is consumed up to and including the offending element.
func ToArrayOf[A, T any](e Enumeration[T]) ([]A, error) {
	out := make([]A, 0)
	i := 0
	for v := range All(e) {
		a, ok := any(v).(A)
		if !ok && !isNil(v) {
			return nil, fmt.Errorf("%w: element %d of type %T is not assignable to %v", ErrIllegalArgument, i, v, reflect.TypeFor[A]())
		}
		out = append(out, a)
		i++
	}
	return out, nil
}
