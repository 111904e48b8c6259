package cmd

import (
	"errors"
	"fmt"

	"ccconfig/config/models"
	"ccconfig/config/validation"
	"ccconfig/internal/prompt"
	"ccconfig/internal/utils"

	"github.com/spf13/cobra"
)

// errNotInteractive is returned by commands that must ask questions
var errNotInteractive = errors.New("this command must be run in an interactive terminal")

func newAddCommand(cli *CLI) *cobra.Command {
	var input models.AddProfileInput

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new profile",
		Long: `Add a new profile. Missing values are asked for interactively; the base URL
defaults to ` + models.DefaultBaseURL + ` and the model is optional.

Pass both a name and --token to add a profile without prompting:
  cc-config add work --token sk-ant-... --url https://api.example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := input
			if len(args) == 1 {
				in.Name = args[0]
			}

			if in.Name == "" || in.Token == "" {
				if !cli.interactive() {
					p := cli.printer(cmd)
					p.Info(`Run "cc-config add" or "cc-config add <name>" in a terminal, or pass <name> and --token`)
					return errNotInteractive
				}
				if err := cli.askProfile(cmd, &in); err != nil {
					if errors.Is(err, prompt.ErrAborted) {
						cli.printer(cmd).Info("Cancelled")
						return nil
					}
					return fmt.Errorf("failed to add profile: %w", err)
				}
			}

			if err := cli.manager.Add(in); err != nil {
				return fmt.Errorf("failed to add profile: %w", err)
			}

			printAdded(cli, cmd, in)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Token, "token", "", "auth token")
	cmd.Flags().StringVar(&input.BaseURL, "url", "", "base URL (default "+models.DefaultBaseURL+")")
	cmd.Flags().StringVar(&input.Model, "model", "", "model name")
	return cmd
}

// askProfile prompts for whatever in is missing
func (cli *CLI) askProfile(cmd *cobra.Command, in *models.AddProfileInput) error {
	_, profiles, err := cli.manager.List()
	if err != nil {
		return err
	}

	unused := func(name string) error {
		if err := validation.ValidateName(name); err != nil {
			return err
		}
		if _, ok := profiles[name]; ok {
			return fmt.Errorf("%w: profile %q already exists", validation.ErrInvalidInput, name)
		}
		return nil
	}

	if in.Name != "" {
		if err := unused(in.Name); err != nil {
			return err
		}
	}

	prompter, closer, err := cli.openPrompter(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	if in.Name == "" {
		if in.Name, err = prompter.Required("Profile name", unused); err != nil {
			return err
		}
	}
	if in.Token == "" {
		if in.Token, err = prompter.Secret("Anthropic auth token", validation.ValidateToken); err != nil {
			return err
		}
	}
	if in.BaseURL == "" {
		question := fmt.Sprintf("Base URL (default: %s)", models.DefaultBaseURL)
		if in.BaseURL, err = prompter.Optional(question, validation.ValidateBaseURL); err != nil {
			return err
		}
	}
	if in.Model == "" {
		if in.Model, err = prompter.Optional("Model (default: not set)", nil); err != nil {
			return err
		}
	}
	return nil
}

func printAdded(cli *CLI, cmd *cobra.Command, in models.AddProfileInput) {
	p := cli.printer(cmd)
	p.Success("Profile %q added", in.Name)

	baseURL := in.BaseURL
	if baseURL == "" {
		baseURL = models.DefaultBaseURL
	}

	p.Println()
	p.Println("New profile:")
	p.Separator()
	p.KeyValue("Name", in.Name)
	p.KeyValue("Token", utils.MaskToken(in.Token))
	p.KeyValue("Base URL", baseURL)
	p.KeyValue("Model", in.Model)
	p.Separator()
	p.Println()
	p.Info(`Run "cc-config use %s" to switch to this profile`, in.Name)
}
