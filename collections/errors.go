package collections

import "errors"

// Sentinel errors returned by collection helpers.
//
// Use [errors.Is] for comparisons:
//
//	if err := collections.MergeIntoMap(src, dst); errors.Is(err, collections.ErrIllegalArgument) {
//	    // dst was nil
//	}
var (
	// ErrIllegalArgument is returned when a helper has no valid place to
	// write its result, e.g. a nil target map passed to [MergeIntoMap].
	// Every other kind of bad input (nil slices, nil funcs, ambiguous
	// matches) yields an empty result instead of an error.
	ErrIllegalArgument = errors.New("collections: illegal argument")
)
