// Package cmd provides Cobra CLI commands for viewshell.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/viewshell/internal/cli"
	"github.com/bnema/viewshell/internal/domain/build"
)

// GUIRunner starts the browser window and returns the process exit code.
type GUIRunner func(app *cli.App, initialURL string) int

// ExitError carries a non-zero exit code out of a command.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// commands that run without loading the configuration
var noAppCommands = map[string]bool{
	"help":       true,
	"completion": true,
	"version":    true,
	"path":       true,
	"schema":     true,
}

type rootOptions struct {
	configPath string
	buildInfo  build.Info
	runGUI     GUIRunner
	app        *cli.App
}

// NewRootCmd builds the command tree.
func NewRootCmd(info build.Info, runGUI GUIRunner) *cobra.Command {
	opts := &rootOptions{buildInfo: info, runGUI: runGUI}

	root := &cobra.Command{
		Use:   "viewshell",
		Short: "A tabbed WebKit browser shell",
		Long: `viewshell - a tabbed browser shell built with GTK4 and WebKitGTK.

Every tab shares one storage partition. Downloads land in a temp directory
and move to their final place once you pick it, with a small panel tracking
progress.

Use 'viewshell browse' to open the browser window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if noAppCommands[cmd.Name()] {
				return nil
			}
			app, err := cli.NewApp(opts.configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = opts.buildInfo
			opts.app = app
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/viewshell/config.toml)")

	root.AddCommand(
		newBrowseCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// Execute runs the command tree and exits on failure.
func Execute(info build.Info, runGUI GUIRunner) {
	err := NewRootCmd(info, runGUI).Execute()
	if err == nil {
		return
	}
	var exit ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
