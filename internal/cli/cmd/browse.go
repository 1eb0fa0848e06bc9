package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	domainurl "github.com/bnema/viewshell/internal/domain/url"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [url]",
		Short: "Launch the graphical browser",
		Long: `Launch the GTK4 graphical browser.

If a URL is provided, open it as the only tab. Otherwise, open the
configured startup pages.

Examples:
  viewshell browse                  # Open the startup pages
  viewshell browse example.com      # Open https://example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if opts.runGUI == nil {
				return errors.New("browser frontend not available")
			}
			var initialURL string
			if len(args) == 1 {
				initialURL = domainurl.Normalize(args[0])
			}
			if code := opts.runGUI(opts.app, initialURL); code != 0 {
				return ExitError{Code: code}
			}
			return nil
		},
	}
}
