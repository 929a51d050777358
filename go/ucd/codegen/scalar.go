package codegen

import (
	"math/bits"

	"github.com/ucdkit/ucdkit/go/ucd"
)

// EmitScalar renders a scalar-valued table: an enum type for the value
// tokens, the stage-1 index array, the flattened stage-2 value array,
// and a Lookup<Type> routine. The enum lists the default value first
// and the remaining tokens in stage-2 first-use order, so identical
// inputs always produce the same constants.
func EmitScalar(g *Generator, t *ucd.TwoStageTable, typeName string) {
	tokens := enumTokens(t)
	underlying := "uint8"
	if len(tokens) > 256 {
		underlying = "uint16"
	}
	prefix := lowerFirst(typeName)

	g.Printf("type %s %s\n\n", typeName, underlying)
	g.Printf("const (\n")
	for i, tok := range tokens {
		if i == 0 {
			g.Printf("\t%s%s %s = iota\n", typeName, tok, typeName)
		} else {
			g.Printf("\t%s%s\n", typeName, tok)
		}
	}
	g.Printf(")\n\n")

	emitStage1(g, prefix, t)

	g.Printf("var %sStage2 = [%d]%s{\n", prefix, len(t.Stage2)*t.BlockSize, typeName)
	for i, block := range t.Stage2 {
		g.Printf("\t// block %d\n", i)
		for j, v := range block {
			if j%8 == 0 {
				g.Printf("\t")
			}
			g.Printf("%s%s, ", typeName, v)
			if j%8 == 7 {
				g.Printf("\n")
			}
		}
	}
	g.Printf("}\n\n")

	shift := bits.TrailingZeros(uint(t.BlockSize))
	g.Printf("// Lookup%s returns the %s value assigned to cp.\n", typeName, typeName)
	g.Printf("func Lookup%s(cp rune) %s {\n", typeName, typeName)
	g.Printf("\tif uint32(cp) > 0x10FFFF {\n\t\treturn %s%s\n\t}\n", typeName, t.Default)
	g.Printf("\ti := int(%sStage1[cp>>%d]) << %d\n", prefix, shift, shift)
	g.Printf("\treturn %sStage2[i|int(cp&%#x)]\n", prefix, t.BlockSize-1)
	g.Printf("}\n\n")
}

// enumTokens lists the distinct value tokens of t, default first, then
// in stage-2 first-use order.
func enumTokens(t *ucd.TwoStageTable) []string {
	seen := map[string]bool{t.Default: true}
	tokens := []string{t.Default}
	for _, block := range t.Stage2 {
		for _, v := range block {
			if !seen[v] {
				seen[v] = true
				tokens = append(tokens, v)
			}
		}
	}
	return tokens
}

// emitStage1 renders the stage-1 index array, sized by the table's
// index width.
func emitStage1(g *Generator, prefix string, t *ucd.TwoStageTable) {
	elem := "uint8"
	switch t.IndexWidth() {
	case 2:
		elem = "uint16"
	case 3, 4:
		elem = "uint32"
	}
	g.Printf("var %sStage1 = [%d]%s{\n", prefix, len(t.Stage1), elem)
	for i, slot := range t.Stage1 {
		if i%16 == 0 {
			g.Printf("\t")
		}
		g.Printf("%d, ", slot)
		if i%16 == 15 {
			g.Printf("\n")
		}
	}
	if len(t.Stage1)%16 != 0 {
		g.Printf("\n")
	}
	g.Printf("}\n\n")
}
