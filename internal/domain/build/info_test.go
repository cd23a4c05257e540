package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_VersionLine(t *testing.T) {
	assert.Equal(t, "datagrid, version 0.9.2", Info{}.VersionLine())
	assert.Equal(t, "datagrid, version 0.9.2", Info{Version: "dev"}.VersionLine())
	assert.Equal(t, "datagrid, version 1.0.0", Info{Version: "1.0.0"}.VersionLine())
}
