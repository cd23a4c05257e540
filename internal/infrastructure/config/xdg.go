package config

import (
	"os"
	"path/filepath"
)

const (
	appName  = "datagrid"
	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for datagrid:
// - $XDG_CONFIG_HOME/datagrid (default: ~/.config/datagrid)
// - $XDG_DATA_HOME/datagrid (default: ~/.local/share/datagrid)
// - $XDG_STATE_HOME/datagrid (default: ~/.local/state/datagrid)
//
// With ENV=dev everything lives under ./.dev/datagrid.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	xdg := func(env string, fallback ...string) string {
		base := os.Getenv(env)
		if base == "" {
			base = filepath.Join(append([]string{homeDir}, fallback...)...)
		}
		return filepath.Join(base, appName)
	}

	return &XDGDirs{
		ConfigHome: xdg("XDG_CONFIG_HOME", ".config"),
		DataHome:   xdg("XDG_DATA_HOME", ".local", "share"),
		StateHome:  xdg("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

// GetConfigDir returns the XDG config directory for datagrid.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetLogDir returns the directory for session logs.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// GetExportDir returns the default directory for exported figures.
func GetExportDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, "exports"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// GetManDir returns the per-user man page directory for section 1,
// $XDG_DATA_HOME/man/man1.
func GetManDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dirs.DataHome), "man", "man1"), nil
}
