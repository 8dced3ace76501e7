// Package collections provides stateless, nil-tolerant helper functions for
// Go slices, maps and iterators: emptiness checks, membership search,
// type-directed lookup, grouping, filtering and element-wise selection.
//
// # Nil means empty
//
// Every helper accepts a nil slice, map, [iter.Seq], [Enumeration] or func
// argument and treats it as "zero elements" or "no behaviour". Nothing
// panics on nil input:
//
//	collections.Filter[[]int](nil, isEven)          // → []int{}
//	collections.ToMap(users, nil)                    // → map[K]User{}
//	v, ok := collections.FindFirstMatch(nil, []int{1}) // → 0, false
//
// Results are always freshly allocated and never nil, so callers may append
// to or write into them without affecting their inputs.
//
// # Value equality vs. identity
//
// Two comparison strategies are exposed as separate functions and are never
// collapsed into one:
//
//	collections.Contains(seq, v)          // deep value equality, nil == nil
//	collections.ContainsInstance(ptrs, p) // pointer identity
//
// # Not found
//
// Lookups report absence with the comma-ok form rather than an error:
//
//	n, ok := collections.FindValueOfType[int]([]any{"a", 1, "b"}) // → 1, true
//	_, ok  = collections.FindValueOfType[string]([]any{"a", "b"}) // → false (ambiguous)
//
// # Mutation
//
// [MergeIntoMap] and [MergePropertiesIntoMap] are the only helpers that write
// into an argument. They return [ErrIllegalArgument] when the target map is
// nil; no other helper returns an error for missing input.
//
// # Concurrency
//
// Helpers hold no state and start no goroutines. They are safe to call
// concurrently on distinct containers, and on a shared container only when
// that container tolerates concurrent reads.
package collections
