package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/datagrid/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Generate documentation from the command tree.

Man pages go to the user man directory (~/.local/share/man/man1 by default)
so 'man datagrid' works right away; run 'mandb' if it does not.
Markdown goes to ./docs unless --output is given.`,
	Example: `  datagrid gen-docs
  datagrid gen-docs --format markdown --output ./site/cli`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

// docFormat generates one documentation flavor for a command tree.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "DATAGRID",
				Section: "1",
				Source:  "datagrid " + buildInfo.DisplayVersion(),
				Manual:  "Datagrid Manual",
				Date:    &now,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	return writeDocs(cmd.OutOrStdout(), rootCmd, genDocsFormat, genDocsOutputDir)
}

// writeDocs generates docs for root in format and lists the written files.
func writeDocs(out io.Writer, root *cobra.Command, format, dir string) error {
	f, ok := docFormats[format]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if dir == "" {
		d, err := f.defaultDir()
		if err != nil {
			return fmt.Errorf("resolve %s directory: %w", format, err)
		}
		dir = d
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No generation timestamp in the footer.
	root.DisableAutoGenTag = true
	if err := f.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", format, err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "*"+f.ext))
	sort.Strings(files)
	fmt.Fprintf(out, "Wrote %d %s page(s) to %s\n", len(files), format, dir)
	for _, p := range files {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(p))
	}
	return nil
}
