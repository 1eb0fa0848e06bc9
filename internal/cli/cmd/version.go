package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/viewshell/internal/cli/styles"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(styles.NewTheme()).Render(opts.buildInfo))
			return nil
		},
	}
}
