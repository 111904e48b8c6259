package cmd

import (
	"fmt"
	"strings"

	"ccconfig/config/storage"
	"ccconfig/internal/shell"

	"github.com/spf13/cobra"
)

func newInitCommand(cli *CLI) *cobra.Command {
	var (
		function  string
		writePath string
	)

	cmd := &cobra.Command{
		Use:   "init <shell>",
		Short: "Print the shell function that switches profiles in place",
		Long: `Print a shell function that runs "cc-config use" and applies the profile's
environment variables to the current shell. Add this to ~/.bashrc or ~/.zshrc:

  eval "$(cc-config init bash)"

Then "ccc work" switches to the work profile in the running shell.
Supported shells: ` + strings.Join(shell.Shells(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := shell.NewGenerator(args[0])
			gen.Function = function

			script, err := gen.Generate()
			if err != nil {
				return err
			}

			if writePath == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), script)
				return err
			}
			if err := storage.EnsureDir(cli.fs, writePath); err != nil {
				return err
			}
			if err := storage.AtomicWriteFile(cli.fs, writePath, []byte(script), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", writePath, err)
			}
			p := cli.printer(cmd)
			p.Success("Wrote shell integration to %s", writePath)
			p.Info(`Add "source %s" to your shell profile`, writePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&function, "name", shell.DefaultFunction, "name of the generated function")
	cmd.Flags().StringVarP(&writePath, "write", "w", "", "write the script to a file instead of printing it")
	return cmd
}
