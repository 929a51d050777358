package ucddata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ucdkit/ucdkit/go/ucd"
)

// AbbrValues resolves every value of m from its full name to its short
// alias. The data files for some properties (Scripts, GraphemeBreak,
// DecompositionType, WordBreak) list full value names while the emitted
// tables use alias tokens.
func AbbrValues(m ucd.RangeMap, aliases *ucd.AliasTable) (ucd.RangeMap, error) {
	out := make(ucd.RangeMap, 0, len(m))
	for _, rv := range m {
		abbr, err := aliases.Abbr(rv.Value)
		if err != nil {
			return nil, err
		}
		out.Add(rv.Range, abbr)
	}
	return out, nil
}

// KeyedValues resolves every value of m through a direct alias-table
// key lookup. The ccc alias table is keyed by the numeric combining
// class, so its data resolves in this direction.
func KeyedValues(m ucd.RangeMap, aliases *ucd.AliasTable) (ucd.RangeMap, error) {
	out := make(ucd.RangeMap, 0, len(m))
	for _, rv := range m {
		v, err := aliases.Value(rv.Value)
		if err != nil {
			return nil, err
		}
		out.Add(rv.Range, v)
	}
	return out, nil
}

// BlockValues resolves Blocks.json values. The file spells block names
// with spaces and hyphens, so they resolve by loose matching; the
// resulting alias is rendered in PascalCase to make a usable token
// ("Basic Latin" -> alias "ASCII" -> "Ascii").
func BlockValues(m ucd.RangeMap, aliases *ucd.AliasTable) (ucd.RangeMap, error) {
	out := make(ucd.RangeMap, 0, len(m))
	for _, rv := range m {
		abbr, err := aliases.AbbrLoose(rv.Value)
		if err != nil {
			return nil, err
		}
		out.Add(rv.Range, PascalCase(abbr))
	}
	return out, nil
}

// AgeValues rewrites Unicode version values as enumerable tokens:
// "15.1" becomes "V15_1".
func AgeValues(m ucd.RangeMap) ucd.RangeMap {
	out := make(ucd.RangeMap, 0, len(m))
	for _, rv := range m {
		major, minor, _ := strings.Cut(rv.Value, ".")
		out.Add(rv.Range, fmt.Sprintf("V%s_%s", major, minor))
	}
	return out
}

// PascalCase converts an underscore-delimited name to PascalCase:
// each word keeps its first letter upper-cased and the rest lowered,
// so "Basic_Latin" becomes "BasicLatin" and "ASCII" becomes "Ascii".
func PascalCase(s string) string {
	words := strings.Split(s, "_")
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

// parseDecomposition parses a raw UnicodeData dm field: an optional
// "<tag>" marking a compatibility decomposition, followed by
// space-separated hex code points.
func parseDecomposition(raw string) (mapping string, compat bool, err error) {
	if strings.HasPrefix(raw, "<") {
		_, rest, ok := strings.Cut(raw, "> ")
		if !ok {
			return "", false, fmt.Errorf("malformed decomposition %q", raw)
		}
		raw = rest
		compat = true
	}
	var b strings.Builder
	for _, field := range strings.Fields(raw) {
		cp, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return "", false, fmt.Errorf("malformed decomposition %q: %v", raw, err)
		}
		b.WriteRune(rune(cp))
	}
	if b.Len() == 0 {
		return "", false, fmt.Errorf("empty decomposition %q", raw)
	}
	return b.String(), compat, nil
}
