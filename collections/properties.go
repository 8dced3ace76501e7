package collections

import (
	"iter"
	"maps"
	"slices"
)

// Properties is a string-keyed property table with an optional chain of
// defaults. Lookups that miss the table fall through to its defaults.
//
// The zero value is an empty table with no defaults, ready to use. A nil
// *Properties behaves as an empty table for every read method.
type Properties struct {
	values   map[string]string
	defaults *Properties
}

// NewProperties returns an empty table backed by defaults, which may be nil.
func NewProperties(defaults *Properties) *Properties {
	return &Properties{defaults: defaults}
}

// Set stores value under key in p, shadowing any default for key.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	p.values[key] = value
}

// Get returns the value for key, searching p first and then its defaults.
func (p *Properties) Get(key string) (string, bool) {
	for cur := p; cur != nil; cur = cur.defaults {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Len returns the number of distinct property names visible through p,
// defaults included.
func (p *Properties) Len() int {
	return len(p.names())
}

// PropertyNames yields every distinct property name visible through p,
// defaults included, in sorted order.
func (p *Properties) PropertyNames() iter.Seq[string] {
	return slices.Values(p.names())
}

func (p *Properties) names() []string {
	seen := make(map[string]struct{})
	for cur := p; cur != nil; cur = cur.defaults {
		for k := range cur.values {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
