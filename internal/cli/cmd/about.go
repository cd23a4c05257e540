package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/datagrid/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version and build info, the config file in use and the export formats.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	formats := make([]string, len(app.Config.Export.Formats))
	for i, f := range app.Config.Export.Formats {
		formats[i] = string(f)
	}
	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo, styles.AboutDetails{
		ConfigFile: app.Manager.ConfigFile(),
		Formats:    formats,
	}))
	return nil
}
