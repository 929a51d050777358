package ucd

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxCodepoint is the last valid Unicode code point.
	MaxCodepoint rune = 0x10FFFF

	// NumCodepoints is the size of the full code point domain.
	NumCodepoints = int(MaxCodepoint) + 1
)

// CodepointRange is an inclusive range of Unicode code points.
type CodepointRange struct {
	First rune
	Last  rune
}

// Single returns the range containing only cp.
func Single(cp rune) CodepointRange {
	return CodepointRange{First: cp, Last: cp}
}

// ParseCodepointRange parses the UCD textual form of a code point range:
// either a single hexadecimal code point ("20AC") or a dotted range
// ("AC00..D7A3").
func ParseCodepointRange(s string) (CodepointRange, error) {
	first, last, dotted := strings.Cut(s, "..")
	lo, err := strconv.ParseUint(first, 16, 32)
	if err != nil {
		return CodepointRange{}, fmt.Errorf("malformed code point range %q: %v", s, err)
	}
	if !dotted {
		return Single(rune(lo)), nil
	}
	hi, err := strconv.ParseUint(last, 16, 32)
	if err != nil {
		return CodepointRange{}, fmt.Errorf("malformed code point range %q: %v", s, err)
	}
	return CodepointRange{First: rune(lo), Last: rune(hi)}, nil
}

// Contains reports whether cp falls inside the range.
func (r CodepointRange) Contains(cp rune) bool {
	return r.First <= cp && cp <= r.Last
}

// Len returns the number of code points in the range.
func (r CodepointRange) Len() int {
	return int(r.Last-r.First) + 1
}

func (r CodepointRange) String() string {
	if r.First == r.Last {
		return fmt.Sprintf("%04X", r.First)
	}
	return fmt.Sprintf("%04X..%04X", r.First, r.Last)
}
