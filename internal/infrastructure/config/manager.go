// Package config loads, validates and watches the datagrid configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/datagrid/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   bool
}

// NewManager creates a manager reading $XDG_CONFIG_HOME/datagrid/config.toml.
func NewManager() (*Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(dir)
}

// NewManagerAt creates a manager reading config.toml from dir.
func NewManagerAt(dir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// DATAGRID_GRID_ROWS, DATAGRID_EXPORT_DIR, ...
	v.SetEnvPrefix("DATAGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DATAGRID_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATAGRID_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DATAGRID_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DATAGRID_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, configDir: dir}, nil
}

// Load reads the config file, creating it with defaults on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()
	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}
	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// decode unmarshals, normalizes and validates. Caller holds m.mu.
func (m *Manager) decode() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches", m.ConfigFile(), err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}

func normalizeConfig(cfg *Config) {
	for i, f := range cfg.Export.Formats {
		cfg.Export.Formats[i] = ExportFormat(strings.ToLower(strings.TrimSpace(string(f))))
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	for i := range cfg.Datasets {
		cfg.Datasets[i].Name = strings.TrimSpace(cfg.Datasets[i].Name)
		if cfg.Datasets[i].Expr != "" && cfg.Datasets[i].Points == 0 {
			cfg.Datasets[i].Points = 100
		}
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// Created reports whether Load wrote a fresh default file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), filepath.Join(m.configDir, "config.toml")); err != nil {
		return err
	}
	if err := GenerateSchemaFile(m.configDir); err != nil {
		return err
	}
	m.created = true
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("grid.rows", d.Grid.Rows)
	m.viper.SetDefault("grid.cols", d.Grid.Cols)

	m.viper.SetDefault("demo.enabled", d.Demo.Enabled)
	m.viper.SetDefault("demo.builtin_datasets", d.Demo.BuiltinDatasets)

	m.viper.SetDefault("interaction.pick_debounce_ms", d.Interaction.PickDebounceMS)
	m.viper.SetDefault("interaction.notice_seconds", d.Interaction.NoticeSeconds)

	m.viper.SetDefault("toolbar.enabled", d.Toolbar.Enabled)

	m.viper.SetDefault("appearance.palette.background", d.Appearance.Palette.Background)
	m.viper.SetDefault("appearance.palette.surface", d.Appearance.Palette.Surface)
	m.viper.SetDefault("appearance.palette.text", d.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", d.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", d.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.border", d.Appearance.Palette.Border)
	m.viper.SetDefault("appearance.highlight", d.Appearance.Highlight)

	formats := make([]string, len(d.Export.Formats))
	for i, f := range d.Export.Formats {
		formats[i] = string(f)
	}
	m.viper.SetDefault("export.dir", d.Export.Dir)
	m.viper.SetDefault("export.formats", formats)
	m.viper.SetDefault("export.title", d.Export.Title)
	m.viper.SetDefault("export.width_in", d.Export.WidthIn)
	m.viper.SetDefault("export.height_in", d.Export.HeightIn)
	m.viper.SetDefault("export.dpi", d.Export.DPI)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", d.Logging.Compress)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Grid.Layout = slices.Clone(c.Grid.Layout)
	out.Appearance.ColorCycle = slices.Clone(c.Appearance.ColorCycle)
	out.Datasets = slices.Clone(c.Datasets)
	out.Export.Formats = slices.Clone(c.Export.Formats)
	return &out
}

// PickDebounce returns the pick window as a duration.
func (c InteractionConfig) PickDebounce() time.Duration {
	return time.Duration(c.PickDebounceMS) * time.Millisecond
}

// NoticeTTL returns how long a notification is shown.
func (c InteractionConfig) NoticeTTL() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}

// SeriesColors returns the parsed color cycle, or nil for the default cycle.
// Invalid entries are skipped; validation reports them on load.
func (c AppearanceConfig) SeriesColors() []entity.Color {
	var out []entity.Color
	for _, s := range c.ColorCycle {
		if col, err := entity.ParseColor(s); err == nil {
			out = append(out, col)
		}
	}
	return out
}

// FormatNames returns the export formats as plain strings.
func (c ExportConfig) FormatNames() []string {
	out := make([]string, len(c.Formats))
	for i, f := range c.Formats {
		out[i] = string(f)
	}
	return out
}

// ResolveExportDir returns the export directory, falling back to XDG data.
func (c ExportConfig) ResolveExportDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return GetExportDir()
}

// ResolveLogDir returns the log directory, falling back to XDG state.
func (c LoggingConfig) ResolveLogDir() (string, error) {
	if c.LogDir != "" {
		return c.LogDir, nil
	}
	return GetLogDir()
}
