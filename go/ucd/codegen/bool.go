package codegen

import (
	"math/bits"

	"github.com/ucdkit/ucdkit/go/ucd"
)

// EmitBool renders a boolean table with stage-2 packed one bit per code
// point, plus an Is<Name> predicate. The table must have been built
// with a "set" value distinct from its default.
func EmitBool(g *Generator, t *ucd.TwoStageTable, name string) {
	prefix := lowerFirst(name)
	emitStage1(g, prefix, t)
	emitPackedStage2(g, prefix, t)

	shift := bits.TrailingZeros(uint(t.BlockSize))
	g.Printf("// Is%s reports whether cp has the %s property.\n", name, t.Property)
	g.Printf("func Is%s(cp rune) bool {\n", name)
	g.Printf("\tif uint32(cp) > 0x10FFFF {\n\t\treturn false\n\t}\n")
	g.Printf("\tj := int(cp) & %#x\n", t.BlockSize-1)
	g.Printf("\treturn %sStage2[int(%sStage1[cp>>%d])<<%d|j>>3]&(1<<(j&7)) != 0\n",
		prefix, prefix, shift, shift-3)
	g.Printf("}\n\n")
}

// emitPackedStage2 renders the packed stage-2 blocks as one flattened
// byte array, block size over eight bytes per block.
func emitPackedStage2(g *Generator, prefix string, t *ucd.TwoStageTable) {
	packed := t.PackedStage2()
	plen := 0
	if len(packed) > 0 {
		plen = len(packed[0])
	}
	g.Printf("var %sStage2 = [%d]uint8{\n", prefix, len(packed)*plen)
	for i, block := range packed {
		g.Printf("\t// block %d\n", i)
		for j, b := range block {
			if j%16 == 0 {
				g.Printf("\t")
			}
			g.Printf("%#04x, ", b)
			if j%16 == 15 {
				g.Printf("\n")
			}
		}
		if plen%16 != 0 {
			g.Printf("\n")
		}
	}
	g.Printf("}\n\n")
}
