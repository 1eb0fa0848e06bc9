package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/viewshell/internal/cli/styles"
	"github.com/bnema/viewshell/internal/infrastructure/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long:  `Show where the config file lives, print the effective settings or emit its JSON schema.`,
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer := styles.NewConfigRenderer(styles.NewTheme())
			path := opts.configPath
			if path == "" {
				var err error
				if path, err = config.GetConfigFile(); err != nil {
					return err
				}
			}
			_, err := os.Stat(path)
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(path, err == nil))
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults, the config file and VIEWSHELL_* environment overrides are applied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := opts.app
			if app == nil {
				return fmt.Errorf("app not initialized")
			}
			fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderConfig(app.ConfigFile(), app.Config))
			return nil
		},
	}

	var schemaDir string
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		Long: `Print the JSON schema of config.toml, for editor completion and validation.

With --output-dir the schema is written to config.schema.json in that directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if schemaDir != "" {
				path, err := config.GenerateSchemaFile(schemaDir)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(path))
				return nil
			}
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	schemaCmd.Flags().StringVarP(&schemaDir, "output-dir", "o", "", "write config.schema.json into this directory")

	configCmd.AddCommand(pathCmd, showCmd, schemaCmd)
	return configCmd
}
