package ucddata

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/ucdkit/ucdkit/go/ucd"
)

// FromRangeTable converts a unicode.RangeTable into a boolean range
// mapping. Useful for sanity-checking built tables against the stdlib
// tables and for building fixtures.
func FromRangeTable(rt *unicode.RangeTable) ucd.RangeMap {
	var m ucd.RangeMap
	var cur ucd.CodepointRange
	open := false
	rangetable.Visit(rt, func(r rune) {
		if open && r == cur.Last+1 {
			cur.Last = r
			return
		}
		if open {
			m.Add(cur, True)
		}
		cur = ucd.Single(r)
		open = true
	})
	if open {
		m.Add(cur, True)
	}
	return m
}
