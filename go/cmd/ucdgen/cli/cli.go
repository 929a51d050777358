// Package cli implements the ucdgen command: it reads a UCD snapshot,
// selects the smallest two-stage table per property, and writes the
// tables out as Go source.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	dataDir string
	outDir  string
	pkgName string
	only    propSetFlag
	verbose bool

	log *zap.SugaredLogger

	Main = &cobra.Command{
		Use:   "ucdgen",
		Short: "Generate compact Unicode property tables from a UCD snapshot",
		Long: `ucdgen compiles the JSON snapshot of the Unicode Character Database
into Go source: one two-stage lookup table per property, each built at
the block size that minimizes its encoded footprint, plus the flat
auxiliary tables (character names, decompositions, composition
exclusions).`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			base, err := zap.NewProduction()
			if verbose {
				base, err = zap.NewDevelopment()
			}
			if err != nil {
				return err
			}
			log = base.Sugar()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(os.DirFS(dataDir), outDir)
		},
		PostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
)

func init() {
	Main.Flags().StringVar(&dataDir, "data", "data", "directory holding the UCD snapshot JSON files")
	Main.Flags().StringVar(&outDir, "out", ".", "directory the generated Go files are written to")
	Main.Flags().StringVar(&pkgName, "package", "unicodetables", "package name for the generated files")
	Main.Flags().Var(&only, "properties", "comma-separated subset of properties to generate (default all)")
	Main.Flags().BoolVar(&verbose, "verbose", false, "log per-candidate table sizes")
}

// propSetFlag accumulates a comma-separated property filter. An empty
// set enables everything.
type propSetFlag struct {
	set map[string]bool
}

var _ pflag.Value = (*propSetFlag)(nil)

func (f *propSetFlag) String() string {
	if len(f.set) == 0 {
		return ""
	}
	names := maps.Keys(f.set)
	slices.Sort(names)
	return strings.Join(names, ",")
}

func (f *propSetFlag) Set(v string) error {
	if f.set == nil {
		f.set = make(map[string]bool)
	}
	for _, name := range strings.Split(v, ",") {
		if name = strings.TrimSpace(name); name != "" {
			f.set[name] = true
		}
	}
	return nil
}

func (f *propSetFlag) Type() string {
	return "properties"
}

func (f *propSetFlag) enabled(name string) bool {
	return len(f.set) == 0 || f.set[name]
}
