package cmd

import (
	"errors"
	"fmt"

	"ccconfig/config"
	"ccconfig/internal/prompt"
	"ccconfig/internal/utils"

	"github.com/spf13/cobra"
)

const notSet = "not set"

func newRemoveCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a profile",
		Long:    "Remove a profile after confirmation. The active profile cannot be removed.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			p := cli.printer(cmd)

			if !cli.interactive() {
				p.Info(`Run "cc-config remove %s" in a terminal to confirm the removal`, name)
				return errNotInteractive
			}

			current, profiles, err := cli.manager.List()
			if err != nil {
				return fmt.Errorf("failed to remove profile: %w", err)
			}
			profile, ok := profiles[name]
			if !ok {
				return &config.ProfileError{Name: name, Err: config.ErrProfileNotFound}
			}
			if current == name {
				p.Info("Switch to another profile before removing this one")
				return &config.ProfileError{Name: name, Err: config.ErrCannotRemoveActiveProfile}
			}

			p.Println()
			p.Println("Profile to remove:")
			p.Separator()
			p.KeyValue("Name", name)
			p.KeyValue("Token", orNotSet(profile.AuthToken, utils.MaskToken))
			p.KeyValue("Base URL", orNotSet(profile.BaseURL, nil))
			p.KeyValue("Model", orNotSet(profile.Model, nil))
			p.Separator()

			prompter, closer, err := cli.openPrompter(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			confirmed, err := prompter.Confirm(fmt.Sprintf("Remove profile %q?", name))
			if err != nil && !errors.Is(err, prompt.ErrAborted) {
				return err
			}
			if !confirmed {
				p.Info("Cancelled")
				return nil
			}

			if err := cli.manager.Remove(name); err != nil {
				return fmt.Errorf("failed to remove profile: %w", err)
			}
			p.Success("Profile %q removed", name)
			return nil
		},
	}
}

func orNotSet(value string, format func(string) string) string {
	if value == "" {
		return notSet
	}
	if format != nil {
		return format(value)
	}
	return value
}
