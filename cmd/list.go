package cmd

import (
	"fmt"
	"sort"

	"ccconfig/config/models"
	"ccconfig/internal/utils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// listing is the structured form of `list -o json|yaml`
type listing struct {
	Current  string                    `json:"current" yaml:"current"`
	Profiles map[string]models.Profile `json:"profiles" yaml:"profiles"`
}

func newListCommand(cli *CLI) *cobra.Command {
	var (
		output     string
		showTokens bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all profiles",
		Long:    "List all saved profiles; the active one is marked with *",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, profiles, err := cli.manager.List()
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			switch output {
			case "text", "":
				printProfileNames(cli, cmd, current, profiles)
				return nil
			case "json", "yaml":
				return printListing(cmd, output, current, profiles, showTokens)
			default:
				return fmt.Errorf("unknown output format %q (expected text, json or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&showTokens, "show-tokens", false, "include unmasked tokens in json/yaml output")
	return cmd
}

func sortedNames(profiles map[string]models.Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printProfileNames(cli *CLI, cmd *cobra.Command, current string, profiles map[string]models.Profile) {
	p := cli.printer(cmd)
	if len(profiles) == 0 {
		p.Warn("No profiles found")
		return
	}
	for _, name := range sortedNames(profiles) {
		p.Println(p.ProfileLine(name, name == current))
	}
}

func printListing(cmd *cobra.Command, format, current string, profiles map[string]models.Profile, showTokens bool) error {
	out := listing{Current: current, Profiles: make(map[string]models.Profile, len(profiles))}
	for name, profile := range profiles {
		if !showTokens && profile.AuthToken != "" {
			profile.AuthToken = utils.MaskToken(profile.AuthToken)
		}
		out.Profiles[name] = profile
	}

	var (
		data []byte
		err  error
	)
	if format == "json" {
		data, err = models.EncodeJSON(out, "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
