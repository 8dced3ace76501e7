package collections

import "iter"

// Enumeration is a one-shot, forward-only cursor over a sequence of
// elements. Once Next has returned false the enumeration is exhausted and
// every later call returns false as well.
//
// Accept Enumeration where a caller hands over a cursor it has already
// opened and does not expect to rewind. For re-iterable sequences prefer
// [iter.Seq].
type Enumeration[T any] interface {
	// Next advances the cursor and returns the next element. It returns the
	// zero value and false once the elements are exhausted.
	Next() (T, bool)
}

// EnumerationFunc adapts a plain function to the [Enumeration] interface.
type EnumerationFunc[T any] func() (T, bool)

// Next calls f. A nil f is an exhausted enumeration.
func (f EnumerationFunc[T]) Next() (T, bool) {
	if f == nil {
		var zero T
		return zero, false
	}
	return f()
}

// EnumerateSlice returns an [Enumeration] over the elements of items, in
// order. The slice is read lazily, not copied.
func EnumerateSlice[T any](items []T) Enumeration[T] {
	i := 0
	return EnumerationFunc[T](func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		v := items[i]
		i++
		return v, true
	})
}

// SeqEnumeration is an [Enumeration] that pulls from an [iter.Seq].
// It is returned by [EnumerateSeq].
type SeqEnumeration[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// EnumerateSeq returns an [Enumeration] that pulls elements from seq.
//
// The underlying [iter.Pull] coroutine is released automatically once the
// sequence is exhausted. Callers that abandon the enumeration early must
// call [SeqEnumeration.Stop].
func EnumerateSeq[T any](seq iter.Seq[T]) *SeqEnumeration[T] {
	if seq == nil {
		return &SeqEnumeration[T]{done: true}
	}
	next, stop := iter.Pull(seq)
	return &SeqEnumeration[T]{next: next, stop: stop}
}

// Next returns the next element of the sequence.
func (e *SeqEnumeration[T]) Next() (T, bool) {
	if e == nil || e.done {
		var zero T
		return zero, false
	}
	v, ok := e.next()
	if !ok {
		e.Stop()
	}
	return v, ok
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (e *SeqEnumeration[T]) Stop() {
	if e == nil {
		return
	}
	if e.stop != nil {
		e.stop()
	}
	e.done = true
}

// All adapts an [Enumeration] into a single-use [iter.Seq]. A nil e yields
// no elements.
func All[T any](e Enumeration[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if e == nil {
			return
		}
		for v, ok := e.Next(); ok; v, ok = e.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
