package cmd

import (
	"fmt"

	"ccconfig/config/models"
	"ccconfig/config/storage"
	"ccconfig/internal/platform"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newEnvCommand(cli *CLI) *cobra.Command {
	var (
		format    string
		writePath string
	)

	cmd := &cobra.Command{
		Use:   "env [name]",
		Short: "Print the environment of a profile",
		Long: `Print the environment variables of a profile (the active one by default)
without switching to it.

  eval "$(cc-config env work)"
  cc-config env work --format dotenv
  cc-config env work --write .env`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, profile, err := cli.resolveProfile(args)
			if err != nil {
				return err
			}

			if writePath != "" {
				if err := writeDotenv(cli, writePath, profile); err != nil {
					return err
				}
				cli.printer(cmd).Success("Wrote %s environment to %s", name, writePath)
				return nil
			}

			out := cmd.OutOrStdout()
			switch format {
			case "shell", "":
				fmt.Fprintln(out, platform.EnvCommand(cli.platform.Shell, profile))
			case "dotenv":
				content, err := godotenv.Marshal(dotenvMap(profile))
				if err != nil {
					return fmt.Errorf("failed to render dotenv: %w", err)
				}
				if content != "" {
					fmt.Fprintln(out, content)
				}
			default:
				return fmt.Errorf("unknown format %q (expected shell or dotenv)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "shell", "output format: shell or dotenv")
	cmd.Flags().StringVarP(&writePath, "write", "w", "", "write a dotenv file instead of printing")
	return cmd
}

// resolveProfile returns the named profile, or the active one without args
func (cli *CLI) resolveProfile(args []string) (string, models.Profile, error) {
	if len(args) == 0 {
		return cli.manager.Current()
	}
	profile, err := cli.manager.Get(args[0])
	if err != nil {
		return "", models.Profile{}, err
	}
	return args[0], profile, nil
}

// dotenvMap holds the profile's non-empty fields
func dotenvMap(profile models.Profile) map[string]string {
	env := make(map[string]string, len(models.EnvKeys))
	for _, key := range models.EnvKeys {
		if value := profile.Get(key); value != "" {
			env[key] = value
		}
	}
	return env
}

func writeDotenv(cli *CLI, path string, profile models.Profile) error {
	content, err := godotenv.Marshal(dotenvMap(profile))
	if err != nil {
		return fmt.Errorf("failed to render dotenv: %w", err)
	}
	if err := storage.AtomicWriteFile(cli.fs, path, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
