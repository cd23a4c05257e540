// Package cmd provides Cobra CLI commands for datagrid.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/datagrid/internal/cli"
	"github.com/bnema/datagrid/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "datagrid",
		Short: "An interactive grid of plot panels in the terminal",
		Long: `Datagrid - a figure of plot panels you split, merge and fill with the mouse.

The figure is a fixed grid of cells partitioned into rectangular panels.
Every panel is a small chart.

Mouse:
  - middle click a panel for the grid menu (split, extend into a neighbor)
  - right click a panel for the data menu (plot a dataset as line, bar or scatter)
  - left click a series for the action menu (remove, recolor)

Use 'datagrid demo' to open the grid, or 'datagrid export' to render a
layout to PNG, SVG or HTML without a terminal.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.VersionLine())
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "datagrid":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
