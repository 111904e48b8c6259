package cmd

import (
	"errors"

	"ccconfig/internal/probe"
	"ccconfig/internal/tui"

	"github.com/spf13/cobra"
)

func newUICommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Browse and switch profiles interactively",
		Long: `Open a full-screen profile browser. Navigate with j/k, press u to make a
profile active, a to add, d to remove and p to check its endpoint. The list
reloads when the profile store changes on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.interactive() {
				return errors.New("the profile browser requires an interactive terminal; use the other subcommands in scripts")
			}

			var proberOpts []probe.Option
			if cli.httpClient != nil {
				proberOpts = append(proberOpts, probe.WithHTTPClient(cli.httpClient))
			}

			return tui.Run(cli.manager, cli.log,
				tui.WithShell(cli.platform.Shell),
				tui.WithProber(probe.New(proberOpts...)),
			)
		},
	}
}
