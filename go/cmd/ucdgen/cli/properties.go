package cli

import (
	"github.com/ucdkit/ucdkit/go/ucd"
	"github.com/ucdkit/ucdkit/go/ucd/ucddata"
)

// scalarProperty describes one enumerated property run: the snapshot
// file it loads, the value transform applied to it, and the enum type
// it generates.
type scalarProperty struct {
	// Name is the short property alias, also the flag token and the
	// generated file's base name.
	Name     string
	File     string
	TypeName string
	Default  string

	// ReprSize is the declared byte width of one emitted value. It is
	// configuration, not inferred from the snapshot: the cost function
	// must not change just because a data file gained or lost tokens.
	ReprSize int

	// AliasKey selects the value-alias table handed to Transform and to
	// the patch loader. Empty when the file's values are used directly.
	AliasKey string

	// Patch names an @missing-style overlay resolved through the alias
	// table; its assignments win over the primary file.
	Patch string

	Transform func(ucd.RangeMap, *ucd.AliasTable) (ucd.RangeMap, error)
}

// scalarProperties mirrors the order the tables have always been
// generated in. Values arrive abbreviated in the Derived* extractions
// and as full names elsewhere, hence the per-property transforms.
var scalarProperties = []scalarProperty{
	{
		Name:     "gc",
		File:     "extracted/DerivedGeneralCategory.json",
		TypeName: "GeneralCategory",
		Default:  "Cn",
		ReprSize: 1,
	},
	{
		Name:      "blk",
		File:      "Blocks.json",
		TypeName:  "Block",
		Default:   "NoBlock",
		ReprSize:  2,
		AliasKey:  "blk",
		Transform: ucddata.BlockValues,
	},
	{
		Name:      "sc",
		File:      "Scripts.json",
		TypeName:  "Script",
		Default:   "Zzzz",
		ReprSize:  1,
		AliasKey:  "sc",
		Transform: ucddata.AbbrValues,
	},
	{
		Name:      "age",
		File:      "DerivedAge.json",
		TypeName:  "Age",
		Default:   "Unassigned",
		ReprSize:  1,
		Transform: ageValues,
	},
	{
		Name:     "hst",
		File:     "HangulSyllableType.json",
		TypeName: "HangulSyllableType",
		Default:  "NA",
		ReprSize: 1,
	},
	{
		Name:      "gcb",
		File:      "auxiliary/GraphemeBreakProperty.json",
		TypeName:  "GraphemeClusterBreak",
		Default:   "XX",
		ReprSize:  1,
		AliasKey:  "gcb",
		Transform: ucddata.AbbrValues,
	},
	{
		Name:     "bc",
		File:     "extracted/DerivedBidiClass.json",
		TypeName: "BidiClass",
		Default:  "L",
		ReprSize: 1,
		AliasKey: "bc",
		Patch:    "extracted/DerivedBidiClass.missing.json",
	},
	{
		Name:      "ccc",
		File:      "extracted/DerivedCombiningClass.json",
		TypeName:  "CanonicalCombiningClass",
		Default:   "NR",
		ReprSize:  1,
		AliasKey:  "ccc",
		Transform: ucddata.KeyedValues,
	},
	{
		Name:      "dt",
		File:      "extracted/DerivedDecompositionType.json",
		TypeName:  "DecompositionType",
		Default:   "None",
		ReprSize:  1,
		AliasKey:  "dt",
		Transform: ucddata.AbbrValues,
	},
	{
		Name:      "wb",
		File:      "auxiliary/WordBreakProperty.json",
		TypeName:  "WordBreak",
		Default:   "XX",
		ReprSize:  1,
		AliasKey:  "wb",
		Transform: ucddata.AbbrValues,
	},
	{
		Name:      "insc",
		File:      "IndicSyllabicCategory.json",
		TypeName:  "IndicSyllabicCategory",
		Default:   "Other",
		ReprSize:  1,
		Transform: pascalValues,
	},
}

func ageValues(m ucd.RangeMap, _ *ucd.AliasTable) (ucd.RangeMap, error) {
	return ucddata.AgeValues(m), nil
}

func pascalValues(m ucd.RangeMap, _ *ucd.AliasTable) (ucd.RangeMap, error) {
	out := make(ucd.RangeMap, 0, len(m))
	for _, rv := range m {
		out.Add(rv.Range, ucddata.PascalCase(rv.Value))
	}
	return out, nil
}
