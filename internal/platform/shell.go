package platform

import (
	"strings"

	"ccconfig/config/models"
)

// Shell spells environment variable commands for one shell family
type Shell interface {
	Set(key, value string) string
	Unset(key string) string
	Separator() string
}

// ShellFor returns the shell syntax of a family
func ShellFor(f Family) Shell {
	if f == Windows {
		return cmdShell{}
	}
	return posixShell{}
}

type posixShell struct{}

var posixEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

func (posixShell) Set(key, value string) string {
	return "export " + key + `="` + posixEscaper.Replace(value) + `"`
}

func (posixShell) Unset(key string) string {
	return "unset " + key
}

func (posixShell) Separator() string {
	return " && "
}

type cmdShell struct{}

func (cmdShell) Set(key, value string) string {
	return `set "` + key + "=" + value + `"`
}

func (cmdShell) Unset(key string) string {
	return `set "` + key + `="`
}

func (cmdShell) Separator() string {
	return " && "
}

// EnvCommands returns one command per profile field: set when the field has
// non-blank content, unset otherwise.
func EnvCommands(sh Shell, profile models.Profile) []string {
	commands := make([]string, 0, len(models.EnvKeys))
	for _, key := range models.EnvKeys {
		if value := profile.Get(key); strings.TrimSpace(value) != "" {
			commands = append(commands, sh.Set(key, value))
		} else {
			commands = append(commands, sh.Unset(key))
		}
	}
	return commands
}

// EnvCommand joins EnvCommands into a single line
func EnvCommand(sh Shell, profile models.Profile) string {
	return strings.Join(EnvCommands(sh, profile), sh.Separator())
}
