package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location, the effective configuration or its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Long:  `Print the config file path. The file is created with defaults on first run.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides and
normalization were applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Describe every config key",
	Long: `List every config key with its type, default and allowed values.
With --json, print the JSON schema of the config file instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configSchemaJSON bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)

	configSchemaCmd.Flags().BoolVar(&configSchemaJSON, "json", false, "print the JSON schema")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(app.Manager.ConfigFile(), app.Manager.Created()))
	if app.LoadErr != nil {
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(app.LoadErr))
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	if app.LoadErr != nil {
		// Defaults are in effect; say why before printing them.
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(app.LoadErr))
	}

	body, err := config.Encode(app.Config)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEffective(app.Manager.ConfigFile(), body))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaJSON {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigSchemaRenderer(app.Theme).Render(config.Keys()))
	return nil
}
