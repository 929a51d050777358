package flattab

import (
	"strings"

	"golang.org/x/exp/slices"
)

// DecompEntry is one code point's decomposition mapping. Compat marks a
// compatibility (non-canonical) decomposition, which never composes
// back.
type DecompEntry struct {
	Codepoint rune
	Mapping   string
	Compat    bool
}

// ComposeEntry is the reverse direction: a decomposed string and the
// code point it composes to.
type ComposeEntry struct {
	Mapping   string
	Codepoint rune
}

// DecompositionTable holds the code point to decomposition mapping and
// its reverse, each sorted for binary search.
type DecompositionTable struct {
	forward []DecompEntry
	reverse []ComposeEntry
}

// NewDecompositionTable builds both directions from the UnicodeData
// decomposition entries. The forward table keeps every decomposition;
// the reverse table skips compatibility decompositions and is sorted by
// mapping content.
func NewDecompositionTable(entries []DecompEntry) *DecompositionTable {
	t := &DecompositionTable{
		forward: slices.Clone(entries),
	}
	slices.SortFunc(t.forward, func(a, b DecompEntry) int {
		return int(a.Codepoint - b.Codepoint)
	})
	for _, e := range t.forward {
		if e.Compat {
			continue
		}
		t.reverse = append(t.reverse, ComposeEntry{Mapping: e.Mapping, Codepoint: e.Codepoint})
	}
	slices.SortFunc(t.reverse, func(a, b ComposeEntry) int {
		return strings.Compare(a.Mapping, b.Mapping)
	})
	return t
}

// Decomposition returns cp's decomposition mapping.
func (t *DecompositionTable) Decomposition(cp rune) (string, bool) {
	i, ok := slices.BinarySearchFunc(t.forward, cp, func(e DecompEntry, cp rune) int {
		return int(e.Codepoint - cp)
	})
	if !ok {
		return "", false
	}
	return t.forward[i].Mapping, true
}

// Composition returns the code point whose canonical decomposition is s.
func (t *DecompositionTable) Composition(s string) (rune, bool) {
	i, ok := slices.BinarySearchFunc(t.reverse, s, func(e ComposeEntry, s string) int {
		return strings.Compare(e.Mapping, s)
	})
	if !ok {
		return 0, false
	}
	return t.reverse[i].Codepoint, true
}

// Forward returns the sorted forward entries, for serialization.
func (t *DecompositionTable) Forward() []DecompEntry {
	return t.forward
}

// Reverse returns the sorted reverse entries, for serialization.
func (t *DecompositionTable) Reverse() []ComposeEntry {
	return t.reverse
}
