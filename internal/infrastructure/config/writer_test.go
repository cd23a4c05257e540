package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_DefaultConfig(t *testing.T) {
	data, err := Encode(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[grid]")
	assert.Contains(t, out, "pick_debounce_ms = 400")
	assert.Contains(t, out, "[appearance.palette]")

	_, err = Encode(nil)
	assert.Error(t, err)
}

func TestWriteConfig_DoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfig(DefaultConfig(), path))

	err := WriteConfig(DefaultConfig(), path)
	assert.ErrorIs(t, err, os.ErrExist)
}
