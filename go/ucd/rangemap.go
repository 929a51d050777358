package ucd

import "golang.org/x/exp/slices"

// RangeValue assigns a property value to a range of code points.
type RangeValue struct {
	Range CodepointRange
	Value string
}

// RangeMap is an ordered sequence of non-overlapping range assignments.
// Code points not covered by any range take the property's default
// value. The same shape serves both primary mappings and the patch sets
// loaded from companion ".missing" files.
type RangeMap []RangeValue

// NewRangeMap sorts the given assignments by their first code point and
// returns them as a RangeMap. It does not check for overlaps; Validate
// does.
func NewRangeMap(pairs []RangeValue) RangeMap {
	m := RangeMap(pairs)
	m.Sort()
	return m
}

// Add appends an assignment.
func (m *RangeMap) Add(r CodepointRange, value string) {
	*m = append(*m, RangeValue{Range: r, Value: value})
}

// Sort orders the assignments by their first code point. The sort is
// stable so equal-start entries keep their input order.
func (m RangeMap) Sort() {
	slices.SortStableFunc(m, func(a, b RangeValue) int {
		return int(a.Range.First - b.Range.First)
	})
}

// Validate checks the mapping invariants: ranges must be well formed,
// sorted, pairwise disjoint and within the code point domain.
func (m RangeMap) Validate(prop string) error {
	var prev CodepointRange
	for i, rv := range m {
		r := rv.Range
		if r.First < 0 || r.Last > MaxCodepoint {
			return &DomainOverflowError{Property: prop, Range: r}
		}
		if r.Last < r.First || (i > 0 && r.First <= prev.Last) {
			return &InvalidMappingError{Property: prop, Range: r, Prev: prev}
		}
		prev = r
	}
	return nil
}
