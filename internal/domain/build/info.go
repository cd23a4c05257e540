// Package build provides domain entities for build information.
package build

import "fmt"

// DefaultVersion is reported when no version is injected via ldflags.
const DefaultVersion = "0.9.2"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// DisplayVersion returns the version, falling back to DefaultVersion for
// untagged builds.
func (i Info) DisplayVersion() string {
	if i.Version == "" || i.Version == "dev" {
		return DefaultVersion
	}
	return i.Version
}

// VersionLine returns the one-line banner printed by the bare command.
func (i Info) VersionLine() string {
	return fmt.Sprintf("datagrid, version %s", i.DisplayVersion())
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/datagrid"
}
