package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the profile store in the default editor",
		Long:  "Open the profile store in the default editor, creating it with the default profile first if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := cli.printer(cmd)
			path := cli.manager.Path()

			if err := cli.openStore(cmd); err != nil {
				p.Info("Please open the config file manually: %s", path)
				return fmt.Errorf("failed to open config file: %w", err)
			}

			p.Success("Config file opened in the default editor")
			p.Warn("Make sure the file is still valid JSON after editing")
			return nil
		},
	}
}

func (cli *CLI) openStore(cmd *cobra.Command) error {
	p := cli.printer(cmd)

	exists, err := cli.manager.Exists()
	if err != nil {
		return err
	}
	if !exists {
		p.Info("Config file does not exist, creating the default config...")
		if _, err := cli.manager.Load(); err != nil {
			return err
		}
		p.Success("Created the default config file")
	}

	p.Info("Opening config file: %s", cli.manager.Path())
	return cli.platform.Opener.Open(cli.manager.Path())
}
