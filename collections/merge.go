package collections

import "fmt"

// MergeIntoMap copies every key/value pair of source into target, in place.
// Entries of target under keys absent from source are left alone; entries
// under keys present in both are overwritten.
//
// This is the only helper besides [MergePropertiesIntoMap] that mutates an
// argument. A nil source merges nothing. A nil target cannot be written to,
// so MergeIntoMap returns an error wrapping [ErrIllegalArgument] and does
// nothing.
func MergeIntoMap[K comparable, V any](source map[K]V, target map[K]V) error {
	if target == nil {
		return fmt.Errorf("%w: target map must not be nil", ErrIllegalArgument)
	}
	for k, v := range source {
		target[k] = v
	}
	return nil
}

// MergePropertiesIntoMap copies every property of props into target, in
// place, including properties only reachable through the defaults chain.
// Values are resolved with [Properties.Get], so an own value shadows a
// default one.
//
// A nil props merges nothing. A nil target returns an error wrapping
// [ErrIllegalArgument].
func MergePropertiesIntoMap(props *Properties, target map[string]string) error {
	if target == nil {
		return fmt.Errorf("%w: target map must not be nil", ErrIllegalArgument)
	}
	for name := range props.PropertyNames() {
		if v, ok := props.Get(name); ok {
			target[name] = v
		}
	}
	return nil
}
