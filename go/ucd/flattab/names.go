// Package flattab builds the flat, sorted lookup tables for properties
// that a two-stage table serves poorly: string-keyed lookups and
// mappings covering a tiny slice of the code point domain.
package flattab

import (
	"golang.org/x/exp/slices"

	"github.com/ucdkit/ucdkit/go/ucd"
)

// derivedNameRanges lists the ranges whose character names derive from
// the code point itself (Unicode Standard, Table 4-8): Hangul syllables
// follow the syllable decomposition rule, the rest follow a
// "PREFIX-HEX" rule. They are never listed in the name table; callers
// apply the derivation rule at lookup time.
var derivedNameRanges = []ucd.CodepointRange{
	{First: 0xAC00, Last: 0xD7A3},   // HANGUL SYLLABLE
	{First: 0x3400, Last: 0x4DBF},   // CJK UNIFIED IDEOGRAPH-
	{First: 0x4E00, Last: 0x9FFF},   // CJK UNIFIED IDEOGRAPH-
	{First: 0x20000, Last: 0x2A6DF}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x2A700, Last: 0x2B739}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x2B740, Last: 0x2B81D}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x2B820, Last: 0x2CEA1}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x2CEB0, Last: 0x2EBE0}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x2EBF0, Last: 0x2EE5D}, // CJK UNIFIED IDEOGRAPH-, added in 15.1.0
	{First: 0x30000, Last: 0x3134A}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x31350, Last: 0x323AF}, // CJK UNIFIED IDEOGRAPH-
	{First: 0x17000, Last: 0x187F7}, // TANGUT IDEOGRAPH-
	{First: 0x18D00, Last: 0x18D08}, // TANGUT IDEOGRAPH-
	{First: 0x18B00, Last: 0x18CD5}, // KHITAN SMALL SCRIPT CHARACTER-
	{First: 0x1B170, Last: 0x1B2FB}, // NUSHU CHARACTER-
	{First: 0xF900, Last: 0xFA6D},   // CJK COMPATIBILITY IDEOGRAPH-
	{First: 0xFA70, Last: 0xFAD9},   // CJK COMPATIBILITY IDEOGRAPH-
	{First: 0x2F800, Last: 0x2FA1D}, // CJK COMPATIBILITY IDEOGRAPH-
}

// NameDerived reports whether cp's name follows a derivation rule
// instead of being listed.
func NameDerived(cp rune) bool {
	for _, r := range derivedNameRanges {
		if r.Contains(cp) {
			return true
		}
	}
	return false
}

// NameEntry pairs a code point with its character name.
type NameEntry struct {
	Codepoint rune
	Name      string
}

// NameTable is a flat, sorted code point to character name mapping.
type NameTable struct {
	entries []NameEntry
}

// NewNameTable builds the name table from the DerivedName entries,
// dropping every code point whose name is derivable. The entries are
// sorted by code point for binary search.
func NewNameTable(entries []NameEntry) *NameTable {
	kept := make([]NameEntry, 0, len(entries))
	for _, e := range entries {
		if NameDerived(e.Codepoint) {
			continue
		}
		kept = append(kept, e)
	}
	slices.SortFunc(kept, func(a, b NameEntry) int {
		return int(a.Codepoint - b.Codepoint)
	})
	return &NameTable{entries: kept}
}

// Lookup returns the listed name of cp. Derived names are the caller's
// responsibility.
func (t *NameTable) Lookup(cp rune) (string, bool) {
	i, ok := slices.BinarySearchFunc(t.entries, cp, func(e NameEntry, cp rune) int {
		return int(e.Codepoint - cp)
	})
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

// Entries returns the sorted entries, for serialization.
func (t *NameTable) Entries() []NameEntry {
	return t.entries
}
