// Package codegen renders selected tables as Go source. Each property
// shape has its own emitter; a Generator collects the output of one
// file and formats it on write.
package codegen

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"
)

const header = "// Code generated by ucdgen. DO NOT EDIT.\n\n"

// Generator accumulates the body of one generated file. Emitters write
// through Printf and declare the stdlib packages they reference through
// Import; Source assembles and formats the final file.
type Generator struct {
	pkg     string
	imports map[string]bool
	body    bytes.Buffer
}

func NewGenerator(pkg string) *Generator {
	return &Generator{pkg: pkg, imports: make(map[string]bool)}
}

func (g *Generator) Import(path string) {
	g.imports[path] = true
}

func (g *Generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.body, format, args...)
}

// Source assembles the file and runs it through goimports. A formatting
// failure means an emitter produced invalid Go; the raw source rides
// along in the error to make that debuggable.
func (g *Generator) Source() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", g.pkg)
	if len(g.imports) > 0 {
		paths := maps.Keys(g.imports)
		slices.Sort(paths)
		buf.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&buf, "\t%q\n", p)
		}
		buf.WriteString(")\n\n")
	}
	buf.Write(g.body.Bytes())

	src, err := imports.Process("", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

// WriteToFile writes the formatted source through a temp file and a
// rename, so a failed run never leaves a truncated file behind.
func (g *Generator) WriteToFile(path string) error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, src, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
