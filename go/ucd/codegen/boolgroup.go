package codegen

import (
	"math/bits"

	"github.com/dave/jennifer/jen"

	"github.com/ucdkit/ucdkit/go/ucd"
)

// GroupedTable pairs one boolean property of a group with its selected
// table. The group's tables land in a single generated file.
type GroupedTable struct {
	// Name is the exported identifier suffix, e.g. "EmojiPresentation".
	Name  string
	Table *ucd.TwoStageTable
}

// EmitBoolGroup renders a family of boolean properties that ship in one
// source file, such as the emoji-data set. Every property gets its own
// packed table and Is<Name> predicate; the first entry is the group's
// primary property and, when its name differs from the group name, also
// gets an Is<Group> alias.
func EmitBoolGroup(g *Generator, group string, tables []GroupedTable) {
	for i, gt := range tables {
		prefix := lowerFirst(gt.Name)
		emitStage1(g, prefix, gt.Table)
		emitPackedStage2(g, prefix, gt.Table)

		fn := jen.Commentf("Is%s reports whether cp has the %s property.", gt.Name, gt.Table.Property).
			Line().
			Add(packedPredicate("Is"+gt.Name, prefix, gt.Table))
		g.Printf("%#v\n\n", fn)

		if i == 0 && gt.Name != group {
			alias := jen.Commentf("Is%s reports the group's primary property, %s.", group, gt.Table.Property).
				Line().
				Add(jen.Func().Id("Is" + group).Params(jen.Id("cp").Id("rune")).Bool().Block(
					jen.Return(jen.Id("Is" + gt.Name).Call(jen.Id("cp"))),
				))
			g.Printf("%#v\n\n", alias)
		}
	}
}

// packedPredicate builds the bit-test lookup over a packed table, the
// same shape EmitBool prints directly.
func packedPredicate(fnName, prefix string, t *ucd.TwoStageTable) *jen.Statement {
	shift := bits.TrailingZeros(uint(t.BlockSize))
	s1 := prefix + "Stage1"
	s2 := prefix + "Stage2"
	return jen.Func().Id(fnName).Params(jen.Id("cp").Id("rune")).Bool().Block(
		jen.If(jen.Id("uint32").Call(jen.Id("cp")).Op(">").Id("0x10FFFF")).Block(
			jen.Return(jen.False()),
		),
		jen.Id("j").Op(":=").Id("int").Call(jen.Id("cp")).Op("&").Lit(t.BlockSize-1),
		jen.Return(
			jen.Id(s2).Index(
				jen.Id("int").Call(jen.Id(s1).Index(jen.Id("cp").Op(">>").Lit(shift))).
					Op("<<").Lit(shift-3).Op("|").Id("j").Op(">>").Lit(3),
			).Op("&").Parens(jen.Lit(1).Op("<<").Parens(jen.Id("j").Op("&").Lit(7))).
				Op("!=").Lit(0),
		),
	)
}
