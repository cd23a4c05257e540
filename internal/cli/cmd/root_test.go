package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/datagrid/internal/domain/build"
)

func TestRoot_PrintsVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "datagrid, version 1.2.3\n", out.String())
}
