package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsTree() *cobra.Command {
	root := &cobra.Command{Use: "datagrid", Short: "grid of plots", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "demo", Short: "open the grid", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestWriteDocs_Markdown(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, writeDocs(&out, docsTree(), "markdown", dir))
	assert.FileExists(t, filepath.Join(dir, "datagrid.md"))
	assert.FileExists(t, filepath.Join(dir, "datagrid_demo.md"))
	assert.Contains(t, out.String(), "Wrote 2 markdown page(s)")
	assert.Contains(t, out.String(), "- datagrid_demo.md")
}

func TestWriteDocs_Man(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, writeDocs(&out, docsTree(), "man", dir))
	assert.FileExists(t, filepath.Join(dir, "datagrid-demo.1"))
}

func TestWriteDocs_UnknownFormat(t *testing.T) {
	err := writeDocs(&bytes.Buffer{}, docsTree(), "pdf", t.TempDir())
	assert.ErrorContains(t, err, "unsupported format")
}
