// Package shell generates the shell function that applies a profile to the
// running shell. A child process cannot change its parent's environment, so
// the function evals the output of `cc-config env`.
package shell

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"text/template"
)

// DefaultFunction is the name of the generated function
const DefaultFunction = "ccc"

const posixTemplate = `# cc-config shell integration ({{.Shell}})
# Add to your shell profile:
#   eval "$({{.Binary}} init {{.Shell}})"
{{.Function}}() {
    if [ "$#" -eq 0 ]; then
        command {{.Binary}} current
        return
    fi
    case "$1" in
        -*|list|ls|current|cur|open|add|remove|rm|env|ping|ui|init|help)
            command {{.Binary}} "$@"
            return
            ;;
    esac
    command {{.Binary}} use "$1" >&2 || return
    eval "$(command {{.Binary}} env "$1")"
}
`

var templates = map[string]string{
	"bash": posixTemplate,
	"zsh":  posixTemplate,
	"sh":   posixTemplate,
}

var functionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Shells lists the supported shells
func Shells() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generator renders the integration script
type Generator struct {
	Shell    string
	Binary   string
	Function string
}

// NewGenerator creates a Generator for shell with the default names
func NewGenerator(shell string) *Generator {
	return &Generator{
		Shell:    shell,
		Binary:   "cc-config",
		Function: DefaultFunction,
	}
}

// Generate returns the script
func (g *Generator) Generate() (string, error) {
	text, ok := templates[g.Shell]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q (supported: %v)", g.Shell, Shells())
	}
	if !functionName.MatchString(g.Function) {
		return "", fmt.Errorf("invalid function name %q", g.Function)
	}

	tmpl, err := template.New(g.Shell).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, g); err != nil {
		return "", err
	}
	return buf.String(), nil
}
