package cmd

import (
	"fmt"

	"ccconfig/config/models"
	"ccconfig/config/settings"
	"ccconfig/internal/platform"

	"github.com/spf13/cobra"
)

func newUseCommand(cli *CLI) *cobra.Command {
	var syncSettings bool

	cmd := &cobra.Command{
		Use:   "use <name>",
		Short: "Switch to the specified profile",
		Long: `Make <name> the active profile and print the command that applies its
environment variables. The command is copied to the clipboard when possible.

Environment variables only apply to the terminal session you run the command
in; restart Claude Code afterwards. With --sync-settings the profile is also
written into ~/.claude/settings.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := cli.manager.Use(name); err != nil {
				return fmt.Errorf("failed to switch profile: %w", err)
			}
			_, profile, err := cli.manager.Current()
			if err != nil {
				return fmt.Errorf("failed to switch profile: %w", err)
			}

			p := cli.printer(cmd)
			p.Success("Switched to profile: %s", p.Highlight(name))
			p.Println()

			line := platform.EnvCommand(cli.platform.Shell, profile)
			p.Printf("Copy and run the following command to apply the environment variables (%s):\n", cli.platform.Name)
			p.Separator()
			p.Println(line)
			p.Separator()

			cli.copyToClipboard(cmd, line)

			if syncSettings {
				if err := cli.syncSettings(cmd, profile); err != nil {
					return err
				}
			}

			p.Separator()
			p.Warn("Environment variables only apply to the current terminal session")
			p.Warn("Restart Claude Code for the profile to take effect")
			p.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&syncSettings, "sync-settings", false, "also write the profile into Claude Code's settings.json")
	return cmd
}

func (cli *CLI) copyToClipboard(cmd *cobra.Command, text string) {
	p := cli.printer(cmd)

	if !cli.platform.Clipboard.Available() {
		p.Warn("Clipboard is not available, please copy the command above")
		if hint := cli.platform.ClipboardInstallHint(); hint != "" {
			p.Info("Install a clipboard tool: %s", hint)
		}
		return
	}

	p.Info("Copying to clipboard...")
	if err := cli.platform.Clipboard.Copy(text); err != nil {
		cli.log.Debug().Err(err).Msg("clipboard copy failed")
		p.Error("Automatic copy failed, please copy the command above")
		return
	}
	p.Success("Copied to clipboard, paste it to apply!")
}

func (cli *CLI) syncSettings(cmd *cobra.Command, profile models.Profile) error {
	path, err := cli.settingsFile()
	if err != nil {
		return err
	}
	if err := settings.Sync(cli.fs, path, profile, settings.Options{CreateBackup: true}); err != nil {
		return fmt.Errorf("failed to sync Claude Code settings: %w", err)
	}
	cli.log.Debug().Str("path", path).Msg("synced settings")
	cli.printer(cmd).Success("Updated Claude Code settings: %s", path)
	return nil
}
