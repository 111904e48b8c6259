package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"ccconfig/config"
	"ccconfig/config/settings"
	"ccconfig/internal/console"
	"ccconfig/internal/logging"
	"ccconfig/internal/platform"
	"ccconfig/internal/prompt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

const envPrefix = "CC_CONFIG"

// CLI holds what the commands share. Fields left nil are filled with the
// real implementations before a command runs.
type CLI struct {
	manager      *config.Manager
	fs           afero.Fs
	platform     *platform.Platform
	newReader    func() (prompt.LineReader, error)
	interactive  func() bool
	getenv       func(string) string
	httpClient   *http.Client // nil means the probe's own client
	settingsPath string
	log          zerolog.Logger
	logSet       bool

	viper *viper.Viper
}

// NewRootCommand builds the command tree around cli
func NewRootCommand(cli *CLI) *cobra.Command {
	if cli.viper == nil {
		cli.viper = viper.New()
	}

	rootCmd := &cobra.Command{
		Use:   "cc-config",
		Short: "Claude Code profile switcher",
		Long: `Manage named Claude Code profiles (auth token, base URL, model) and
print the shell commands that switch between them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.initialize(cmd)
		},
	}

	rootCmd.SetVersionTemplate(`cc-config {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "profile store path (default ~/.cc-config/profiles.json)")
	flags.Bool("debug", false, "enable debug logging")

	_ = cli.viper.BindPFlag("file", flags.Lookup("config"))
	_ = cli.viper.BindPFlag("debug", flags.Lookup("debug"))
	cli.viper.SetEnvPrefix(envPrefix)
	cli.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cli.viper.AutomaticEnv()

	rootCmd.AddCommand(newListCommand(cli))
	rootCmd.AddCommand(newUseCommand(cli))
	rootCmd.AddCommand(newCurrentCommand(cli))
	rootCmd.AddCommand(newOpenCommand(cli))
	rootCmd.AddCommand(newAddCommand(cli))
	rootCmd.AddCommand(newRemoveCommand(cli))
	rootCmd.AddCommand(newEnvCommand(cli))
	rootCmd.AddCommand(newPingCommand(cli))
	rootCmd.AddCommand(newUICommand(cli))
	rootCmd.AddCommand(newInitCommand(cli))

	return rootCmd
}

// Execute runs the command line and reports the error on stderr
func Execute() error {
	rootCmd := NewRootCommand(&CLI{})
	if err := rootCmd.Execute(); err != nil {
		console.New(os.Stderr).Error("%v", err)
		return err
	}
	return nil
}

func (cli *CLI) initialize(cmd *cobra.Command) error {
	if !cli.logSet {
		cli.log = logging.New(cmd.ErrOrStderr(), cli.viper.GetBool("debug"))
		cli.logSet = true
	}
	if cli.fs == nil {
		cli.fs = afero.NewOsFs()
	}
	if cli.manager == nil {
		path := cli.viper.GetString("file")
		if path == "" {
			defaultPath, err := config.DefaultStorePath()
			if err != nil {
				return err
			}
			path = defaultPath
		}
		cli.manager = config.NewManager(path, config.WithFs(cli.fs), config.WithLogger(cli.log))
	}
	if cli.platform == nil {
		cli.platform = platform.Detect()
	}
	if cli.newReader == nil {
		cli.newReader = func() (prompt.LineReader, error) {
			return prompt.NewTerminal()
		}
	}
	if cli.interactive == nil {
		cli.interactive = prompt.IsTerminal
	}
	if cli.getenv == nil {
		cli.getenv = os.Getenv
	}

	cli.log.Debug().
		Str("store", cli.manager.Path()).
		Str("platform", cli.platform.Name).
		Str("command", cmd.Name()).
		Msg("initialized")
	return nil
}

// settingsFile returns the Claude Code settings path
func (cli *CLI) settingsFile() (string, error) {
	if cli.settingsPath != "" {
		return cli.settingsPath, nil
	}
	path, err := settings.DefaultPath()
	if err != nil {
		return "", err
	}
	cli.settingsPath = path
	return path, nil
}

// printer returns the styled writer for a command's stdout
func (cli *CLI) printer(cmd *cobra.Command) *console.Printer {
	return console.New(cmd.OutOrStdout())
}

// openPrompter starts an interactive session. The caller must close the reader.
func (cli *CLI) openPrompter(cmd *cobra.Command) (*prompt.Prompter, io.Closer, error) {
	reader, err := cli.newReader()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return prompt.NewPrompter(reader, cli.printer(cmd)), reader, nil
}
