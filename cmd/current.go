package cmd

import (
	"fmt"
	"strings"

	"ccconfig/config/models"
	"ccconfig/config/settings"
	"ccconfig/internal/utils"

	"github.com/spf13/cobra"
)

var fieldLabels = map[string]string{
	models.EnvAuthToken: "Token",
	models.EnvBaseURL:   "Base URL",
	models.EnvModel:     "Model",
}

// displayOrder is the order fields are shown in
var displayOrder = []string{models.EnvBaseURL, models.EnvAuthToken, models.EnvModel}

func newCurrentCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:     "current",
		Aliases: []string{"cur"},
		Short:   "Show the active profile",
		Long:    "Show the active profile and check whether the shell environment matches it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, profile, err := cli.manager.Current()
			if err != nil {
				return fmt.Errorf("failed to get current profile: %w", err)
			}

			p := cli.printer(cmd)
			p.Println()
			p.Println("Current profile: " + p.Highlight(name))

			var stored []string
			for _, key := range displayOrder {
				if strings.TrimSpace(profile.Get(key)) != "" {
					stored = append(stored, key)
				}
			}

			if len(stored) > 0 {
				p.Separator()
				for _, key := range stored {
					value := profile.Get(key)
					if key == models.EnvAuthToken {
						value = utils.MaskToken(value)
					}
					p.KeyValue(fieldLabels[key], value)
				}
				p.Separator()
			}

			mismatch := false
			for _, key := range stored {
				if cli.getenv(key) == profile.Get(key) {
					p.Success("%s is set correctly", key)
				} else {
					p.Warn("%s is not set or does not match the profile", key)
					mismatch = true
				}
			}
			p.Println()

			if mismatch {
				p.Info(`Run "cc-config use %s" again to get the commands that set them`, name)
			}

			cli.reportSettingsDrift(cmd, name, profile)
			return nil
		},
	}
}

// reportSettingsDrift mentions a settings.json that points at other credentials.
// It stays quiet when the file is absent or carries no ANTHROPIC_* entries.
func (cli *CLI) reportSettingsDrift(cmd *cobra.Command, name string, profile models.Profile) {
	path, err := cli.settingsFile()
	if err != nil {
		return
	}
	env, err := settings.ReadEnv(cli.fs, path)
	if err != nil {
		cli.log.Debug().Err(err).Str("path", path).Msg("could not read Claude Code settings")
		return
	}
	if len(env) == 0 {
		return
	}
	inSync, err := settings.InSync(cli.fs, path, profile)
	if err != nil || inSync {
		return
	}
	cli.printer(cmd).Info(`Claude Code settings (%s) differ from this profile; run "cc-config use %s --sync-settings" to update them`, path, name)
}
