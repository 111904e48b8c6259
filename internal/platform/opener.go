package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// Opener hands a file to the desktop's default application
type Opener interface {
	Open(path string) error
}

// CommandOpener runs the OS open helper
type CommandOpener struct {
	Name string
	Args []string
	// start launches the command without waiting for it
	start func(*exec.Cmd) error
}

// NewCommandOpener picks the open helper for goos
func NewCommandOpener(goos string) *CommandOpener {
	o := &CommandOpener{start: (*exec.Cmd).Start}
	switch goos {
	case "darwin":
		o.Name = "open"
	case "windows":
		o.Name = "rundll32"
		o.Args = []string{"url.dll,FileProtocolHandler"}
	default:
		o.Name = "xdg-open"
	}
	return o
}

// Command returns the command that would open path
func (o *CommandOpener) Command(path string) *exec.Cmd {
	args := append(append([]string{}, o.Args...), path)
	return exec.Command(o.Name, args...)
}

// Open launches the helper for path
func (o *CommandOpener) Open(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}
	if _, err := exec.LookPath(o.Name); err != nil {
		return fmt.Errorf("no opener command found (`%s`): %w", o.Name, err)
	}
	if err := o.start(o.Command(path)); err != nil {
		return fmt.Errorf("failed to run %s: %w", o.Name, err)
	}
	return nil
}
