package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/datagrid/internal/cli"
	"github.com/bnema/datagrid/internal/cli/model"
	"github.com/bnema/datagrid/internal/infrastructure/clock"
	"github.com/bnema/datagrid/internal/infrastructure/config"
	"github.com/bnema/datagrid/internal/infrastructure/terminal"
	"github.com/bnema/datagrid/internal/logging"
	"github.com/bnema/datagrid/internal/ui/controller"
)

var (
	demoRows      int
	demoCols      int
	demoLayout    []string
	demoNoDemo    bool
	demoNoToolbar bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive plot grid",
	Long: `Open the plot grid in the terminal and block until it is closed.

Without --layout the grid starts as a top and a bottom half. Each --layout
value is one panel rectangle "r1,c1,r2,c2" (inclusive, zero-based); the
rectangles must cover the grid without overlapping.

Examples:
  datagrid demo                                  # 4x4 grid, two halves
  datagrid demo --rows 2 --cols 3                # different grid size
  datagrid demo --layout 0,0,3,1 --layout 0,2,3,3
  datagrid demo --no-demo                        # start with empty panels`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVar(&demoRows, "rows", 0, "grid rows (default from config)")
	demoCmd.Flags().IntVar(&demoCols, "cols", 0, "grid columns (default from config)")
	demoCmd.Flags().StringArrayVar(&demoLayout, "layout", nil, `panel rectangle "r1,c1,r2,c2", repeatable`)
	demoCmd.Flags().BoolVar(&demoNoDemo, "no-demo", false, "do not plot random datasets on panels")
	demoCmd.Flags().BoolVar(&demoNoToolbar, "no-toolbar", false, "hide the toolbar")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := terminal.RequireTTY(); err != nil {
		return fmt.Errorf("demo needs an interactive terminal: %w", err)
	}

	logFile, err := app.UseFileLog()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(*log)

	session, err := app.NewSession(ctx, cli.SessionOptions{
		Rows:   demoRows,
		Cols:   demoCols,
		Layout: demoLayout,
		NoDemo: demoNoDemo,
	})
	if err != nil {
		return err
	}

	cfg := app.Config
	showToolbar := cfg.Toolbar.Enabled && !demoNoToolbar
	if size, err := terminal.GetSize(os.Stdout.Fd()); err == nil {
		reserved := 0
		if showToolbar {
			reserved = 1
		}
		if err := terminal.CheckFits(size, session.Tiling.Rows(), session.Tiling.Cols(), reserved); err != nil {
			return err
		}
	} else {
		log.Debug().Err(err).Msg("window size unknown, skipping size check")
	}

	clk := clock.New()
	ctrl := controller.New(controller.Deps{
		Tiling:   session.Tiling,
		Frame:    session.Frame,
		Panels:   session.Panels,
		Plot:     session.Plot,
		Style:    session.Style,
		Renderer: session.Surface,
		Clock:    clk,
	}, controller.Options{
		PickDebounce:   cfg.Interaction.PickDebounce(),
		NoPickDebounce: cfg.Interaction.PickDebounceMS == 0,
		Demo:           session.Demo,
	})

	exportDir, err := app.ExportDir("")
	if err != nil {
		return fmt.Errorf("resolve export dir: %w", err)
	}
	grid := model.NewGridModel(ctx, model.GridDeps{
		Controller: ctrl,
		Surface:    session.Surface,
		Exporter:   session.Export,
		Plot:       session.Plot,
		Theme:      app.Theme,
		Clock:      clk,
	}, model.GridOptions{
		Toolbar:   cfg.Toolbar.Enabled,
		NoToolbar: demoNoToolbar,
		NoticeTTL: cfg.Interaction.NoticeTTL(),
		ExportDir: exportDir,
		Formats:   cfg.Export.FormatNames(),
		Figure:    app.FigureOptions(),
	})

	p := tea.NewProgram(grid,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	app.Manager.OnConfigChange(func(c *config.Config) {
		p.Send(model.ConfigReloadedMsg{Config: c})
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	log.Info().
		Int("panels", session.Tiling.Len()).
		Int("datasets", session.Frame.Len()).
		Str("log_file", logFile).
		Msg("grid started")

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && errors.Is(ctx.Err(), context.Canceled) {
		err = nil
	}
	if err != nil {
		log.Error().Err(err).Msg("grid stopped")
		return err
	}
	log.Info().Msg("grid closed")
	return nil
}
