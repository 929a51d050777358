package codegen

import (
	"github.com/ucdkit/ucdkit/go/ucd"
	"github.com/ucdkit/ucdkit/go/ucd/flattab"
)

// EmitNames renders the character name table as parallel sorted arrays
// with a binary-search accessor. Code points whose names derive
// algorithmically are absent by construction.
func EmitNames(g *Generator, tbl *flattab.NameTable) {
	g.Import("sort")
	entries := tbl.Entries()

	g.Printf("var nameCodepoints = [%d]rune{\n", len(entries))
	for i, e := range entries {
		if i%8 == 0 {
			g.Printf("\t")
		}
		g.Printf("%#x, ", e.Codepoint)
		if i%8 == 7 {
			g.Printf("\n")
		}
	}
	if len(entries)%8 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf("var nameStrings = [%d]string{\n", len(entries))
	for i, e := range entries {
		if i%4 == 0 {
			g.Printf("\t")
		}
		g.Printf("%q, ", e.Name)
		if i%4 == 3 {
			g.Printf("\n")
		}
	}
	if len(entries)%4 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf(`// CharacterName returns the name assigned to cp. Names that derive
// from the code point itself (Hangul syllables, the CJK and other
// unified ideograph ranges) are not stored.
func CharacterName(cp rune) (string, bool) {
	i := sort.Search(len(nameCodepoints), func(i int) bool { return nameCodepoints[i] >= cp })
	if i < len(nameCodepoints) && nameCodepoints[i] == cp {
		return nameStrings[i], true
	}
	return "", false
}

`)
}

// EmitDecompositions renders the forward decomposition table and the
// reverse composition table built from the canonical subset.
func EmitDecompositions(g *Generator, tbl *flattab.DecompositionTable) {
	g.Import("sort")
	fwd := tbl.Forward()
	rev := tbl.Reverse()

	g.Printf("var decompCodepoints = [%d]rune{\n", len(fwd))
	for i, e := range fwd {
		if i%8 == 0 {
			g.Printf("\t")
		}
		g.Printf("%#x, ", e.Codepoint)
		if i%8 == 7 {
			g.Printf("\n")
		}
	}
	if len(fwd)%8 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf("var decompMappings = [%d]string{\n", len(fwd))
	for i, e := range fwd {
		if i%4 == 0 {
			g.Printf("\t")
		}
		g.Printf("%q, ", e.Mapping)
		if i%4 == 3 {
			g.Printf("\n")
		}
	}
	if len(fwd)%4 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf("var composeMappings = [%d]string{\n", len(rev))
	for i, e := range rev {
		if i%4 == 0 {
			g.Printf("\t")
		}
		g.Printf("%q, ", e.Mapping)
		if i%4 == 3 {
			g.Printf("\n")
		}
	}
	if len(rev)%4 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf("var composeCodepoints = [%d]rune{\n", len(rev))
	for i, e := range rev {
		if i%8 == 0 {
			g.Printf("\t")
		}
		g.Printf("%#x, ", e.Codepoint)
		if i%8 == 7 {
			g.Printf("\n")
		}
	}
	if len(rev)%8 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf(`// Decomposition returns the decomposition mapping of cp, canonical or
// compatibility, with the tag stripped.
func Decomposition(cp rune) (string, bool) {
	i := sort.Search(len(decompCodepoints), func(i int) bool { return decompCodepoints[i] >= cp })
	if i < len(decompCodepoints) && decompCodepoints[i] == cp {
		return decompMappings[i], true
	}
	return "", false
}

// Composition returns the code point that canonically decomposes to s.
// Compatibility mappings never compose back.
func Composition(s string) (rune, bool) {
	i := sort.Search(len(composeMappings), func(i int) bool { return composeMappings[i] >= s })
	if i < len(composeMappings) && composeMappings[i] == s {
		return composeCodepoints[i], true
	}
	return 0, false
}

`)
}

// EmitExclusions renders the Full_Composition_Exclusion set.
func EmitExclusions(g *Generator, set *flattab.ExclusionSet) {
	g.Import("sort")
	cps := set.Codepoints()

	g.Printf("var compositionExclusions = [%d]rune{\n", len(cps))
	for i, cp := range cps {
		if i%8 == 0 {
			g.Printf("\t")
		}
		g.Printf("%#x, ", cp)
		if i%8 == 7 {
			g.Printf("\n")
		}
	}
	if len(cps)%8 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")

	g.Printf(`// IsCompositionExclusion reports whether cp is excluded from
// composition.
func IsCompositionExclusion(cp rune) bool {
	i := sort.Search(len(compositionExclusions), func(i int) bool { return compositionExclusions[i] >= cp })
	return i < len(compositionExclusions) && compositionExclusions[i] == cp
}

`)
}

// EmitRangeTest renders a direct range-test predicate. Sparse binary
// properties with a handful of ranges come out smaller this way than as
// a two-stage table.
func EmitRangeTest(g *Generator, fnName string, m ucd.RangeMap) {
	g.Printf("func %s(cp rune) bool {\n", fnName)
	if len(m) == 0 {
		g.Printf("\treturn false\n}\n\n")
		return
	}
	g.Printf("\tswitch {\n\tcase ")
	for i, rv := range m {
		if i > 0 {
			g.Printf(",\n\t\t")
		}
		r := rv.Range
		if r.First == r.Last {
			g.Printf("cp == %#x", r.First)
		} else {
			g.Printf("cp >= %#x && cp <= %#x", r.First, r.Last)
		}
	}
	g.Printf(":\n\t\treturn true\n\t}\n\treturn false\n}\n\n")
}
