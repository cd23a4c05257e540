// Package cli provides the datagrid command line and terminal UI wiring.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/domain/build"
	"github.com/bnema/datagrid/internal/infrastructure/config"
	"github.com/bnema/datagrid/internal/infrastructure/dataset"
	"github.com/bnema/datagrid/internal/infrastructure/export"
	"github.com/bnema/datagrid/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	// Datasets feeds the data menu of new sessions.
	Datasets port.DatasetSource

	// LoadErr is the error of the last config load. The app keeps running
	// on defaults so `config show` can still report it.
	LoadErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	cfg, loadErr := loadConfig(mgr)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("DATAGRID_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	return &App{
		Config:   cfg,
		Manager:  mgr,
		Theme:    styles.NewTheme(cfg),
		Datasets: newDatasetSource(cfg, mgr),
		LoadErr:  loadErr,
		ctx:      ctx,
	}, nil
}

// newDatasetSource merges the built-in series with the configured ones.
// Relative CSV paths resolve against the config directory.
func newDatasetSource(cfg *config.Config, mgr *config.Manager) *dataset.Source {
	return dataset.NewSource(dataset.SourceOptions{
		Builtin:  cfg.Demo.BuiltinDatasets,
		Datasets: cfg.Datasets,
		BaseDir:  filepath.Dir(mgr.ConfigFile()),
	})
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// UseFileLog moves logging to a rotating session file. The terminal UI owns
// stdout and stderr while it runs.
func (a *App) UseFileLog() (string, error) {
	lc := a.Config.Logging
	if !lc.EnableFileLog {
		a.ctx = logging.WithContext(a.ctx, logging.NewFromConfigValues("disabled", lc.Format))
		return "", nil
	}
	dir, err := lc.ResolveLogDir()
	if err != nil {
		return "", fmt.Errorf("resolve log dir: %w", err)
	}
	sessionID := logging.GenerateSessionID()
	logger, cleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(lc.Level), Format: "json", TimeFormat: "15:04:05.000"},
		logging.FileConfig{
			Dir:        dir,
			SessionID:  sessionID,
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAgeDays,
			Compress:   lc.Compress,
		},
	)
	if err != nil {
		return "", err
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(a.ctx, logger)
	return filepath.Join(dir, logging.SessionFilename(sessionID)), nil
}

// ExportDir returns override, or the configured export directory.
func (a *App) ExportDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return a.Config.Export.ResolveExportDir()
}

// FigureOptions returns the export size and title from the config.
func (a *App) FigureOptions() port.FigureOptions {
	e := a.Config.Export
	return port.FigureOptions{Title: e.Title, WidthIn: e.WidthIn, HeightIn: e.HeightIn, DPI: e.DPI}
}

// Exporters returns one exporter per supported format.
func (a *App) Exporters() []port.FigureExporter {
	return []port.FigureExporter{
		export.NewPNGExporter(),
		export.NewSVGExporter(),
		export.NewHTMLExporter(""),
	}
}

// loadConfig returns the loaded config, or the defaults and the error.
func loadConfig(mgr *config.Manager) (*config.Config, error) {
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), err
	}
	return mgr.Get(), nil
}
