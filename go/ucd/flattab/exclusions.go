package flattab

import "golang.org/x/exp/slices"

// ExclusionSet is the sorted set of code points subject to full
// composition exclusion.
type ExclusionSet struct {
	codepoints []rune
}

// NewExclusionSet sorts and deduplicates the given code points.
func NewExclusionSet(codepoints []rune) *ExclusionSet {
	cps := slices.Clone(codepoints)
	slices.Sort(cps)
	return &ExclusionSet{codepoints: slices.Compact(cps)}
}

// Contains reports whether cp is composition-excluded.
func (s *ExclusionSet) Contains(cp rune) bool {
	_, ok := slices.BinarySearch(s.codepoints, cp)
	return ok
}

// Codepoints returns the sorted set, for serialization.
func (s *ExclusionSet) Codepoints() []rune {
	return s.codepoints
}
