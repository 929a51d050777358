package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/ucdkit/ucdkit/go/ucd"
	"github.com/ucdkit/ucdkit/go/ucd/codegen"
	"github.com/ucdkit/ucdkit/go/ucd/flattab"
	"github.com/ucdkit/ucdkit/go/ucd/ucddata"
)

// generate runs every enabled property. A structural error in one
// property's data aborts that property only; the run fails at the end
// if anything went wrong.
func generate(fsys fs.FS, outDir string) error {
	aliases, err := ucddata.LoadValueAliases(fsys, "PropertyValueAliases.json")
	if err != nil {
		return err
	}

	failed := false
	for _, spec := range scalarProperties {
		if !only.enabled(spec.Name) {
			continue
		}
		if err := generateScalar(fsys, outDir, aliases, spec); err != nil {
			log.Errorw("property failed", "property", spec.Name, "error", err)
			failed = true
		}
	}

	specials := []struct {
		name string
		run  func(fs.FS, string) error
	}{
		{"emoji", generateEmoji},
		{"proplist", generatePropList},
		{"names", generateNames},
		{"decomp", generateDecompositions},
		{"exclusions", generateExclusions},
	}
	for _, s := range specials {
		if !only.enabled(s.name) {
			continue
		}
		if err := s.run(fsys, outDir); err != nil {
			log.Errorw("property failed", "property", s.name, "error", err)
			failed = true
		}
	}

	if failed {
		return errors.New("one or more properties failed to generate")
	}
	return nil
}

func generateScalar(fsys fs.FS, outDir string, aliases map[string]*ucd.AliasTable, spec scalarProperty) error {
	m, err := ucddata.LoadRangeMap(fsys, spec.File)
	if err != nil {
		return err
	}
	var at *ucd.AliasTable
	if spec.AliasKey != "" {
		if at = aliases[spec.AliasKey]; at == nil {
			return fmt.Errorf("no value aliases for property %q", spec.AliasKey)
		}
	}
	if spec.Transform != nil {
		if m, err = spec.Transform(m, at); err != nil {
			return err
		}
	}
	var patch ucd.RangeMap
	if spec.Patch != "" {
		if patch, err = ucddata.LoadPatchMap(fsys, spec.Patch, at); err != nil {
			return err
		}
	}

	candidates, err := ucd.EvaluateCandidates(spec.Name, m, spec.Default, patch, func(t *ucd.TwoStageTable) int {
		return t.TableBytes(spec.ReprSize)
	})
	if err != nil {
		return err
	}
	tbl := pickMinimal(spec.Name, candidates)

	g := codegen.NewGenerator(pkgName)
	codegen.EmitScalar(g, tbl, spec.TypeName)
	return writeOut(g, outDir, spec.Name)
}

func generateEmoji(fsys fs.FS, outDir string) error {
	props, err := ucddata.LoadGrouped(fsys, "emoji/emoji-data.json")
	if err != nil {
		return err
	}

	g := codegen.NewGenerator(pkgName)
	tables := make([]codegen.GroupedTable, 0, len(props))
	for _, p := range props {
		tbl, err := selectPacked(p.Name, p.Ranges)
		if err != nil {
			return err
		}
		tables = append(tables, codegen.GroupedTable{Name: ucddata.PascalCase(p.Name), Table: tbl})
	}
	codegen.EmitBoolGroup(g, "Emoji", tables)
	return writeOut(g, outDir, "emoji")
}

// rangeTestMax is the largest range count emitted as a direct range
// test. Beyond it a packed two-stage table beats the chain of
// comparisons, in both size and lookup cost.
const rangeTestMax = 32

// generatePropList emits PropList properties: sparse ones as direct
// range tests, dense ones as packed tables.
func generatePropList(fsys fs.FS, outDir string) error {
	props, err := ucddata.LoadGrouped(fsys, "PropList.json")
	if err != nil {
		return err
	}

	g := codegen.NewGenerator(pkgName)
	for _, p := range props {
		if err := p.Ranges.Validate(p.Name); err != nil {
			return err
		}
		if len(p.Ranges) <= rangeTestMax {
			codegen.EmitRangeTest(g, "Is"+ucddata.PascalCase(p.Name), p.Ranges)
			continue
		}
		tbl, err := selectPacked(p.Name, p.Ranges)
		if err != nil {
			return err
		}
		codegen.EmitBool(g, tbl, ucddata.PascalCase(p.Name))
	}
	return writeOut(g, outDir, "proplist")
}

func generateNames(fsys fs.FS, outDir string) error {
	entries, err := ucddata.LoadNames(fsys, "extracted/DerivedName.json")
	if err != nil {
		return err
	}

	g := codegen.NewGenerator(pkgName)
	codegen.EmitNames(g, flattab.NewNameTable(entries))
	return writeOut(g, outDir, "names")
}

func generateDecompositions(fsys fs.FS, outDir string) error {
	entries, err := ucddata.LoadDecompositions(fsys, "UnicodeData.json")
	if err != nil {
		return err
	}

	g := codegen.NewGenerator(pkgName)
	codegen.EmitDecompositions(g, flattab.NewDecompositionTable(entries))
	return writeOut(g, outDir, "decomp")
}

func generateExclusions(fsys fs.FS, outDir string) error {
	set, err := ucddata.LoadCompositionExclusions(fsys, "CompositionExclusions.json")
	if err != nil {
		return err
	}

	g := codegen.NewGenerator(pkgName)
	codegen.EmitExclusions(g, set)
	return writeOut(g, outDir, "exclusions")
}

func selectPacked(name string, m ucd.RangeMap) (*ucd.TwoStageTable, error) {
	candidates, err := ucd.EvaluateCandidates(name, m, "false", nil, (*ucd.TwoStageTable).TableBytesPacked)
	if err != nil {
		return nil, err
	}
	return pickMinimal(name, candidates), nil
}

func pickMinimal(name string, candidates []ucd.Candidate) *ucd.TwoStageTable {
	for _, c := range candidates {
		log.Debugw("candidate", "property", name, "block_size", c.Table.BlockSize, "bytes", c.Bytes)
	}
	tbl := ucd.Minimal(candidates)
	log.Infow("selected", "property", name,
		"block_size", tbl.BlockSize,
		"stage2_blocks", len(tbl.Stage2),
		"index_width", tbl.IndexWidth())
	return tbl
}

func writeOut(g *codegen.Generator, outDir, name string) error {
	path := filepath.Join(outDir, name+".go")
	if err := g.WriteToFile(path); err != nil {
		return err
	}
	log.Infow("wrote", "file", path)
	return nil
}
