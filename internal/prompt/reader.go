// Package prompt reads answers from the user, either from a real terminal or
// from a scripted list in tests.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrAborted is returned when the user interrupts or closes input
var ErrAborted = errors.New("input aborted")

// LineReader reads one answer per call
type LineReader interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
	Close() error
}

// IsTerminal reports whether stdin and stdout are both attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Terminal reads from the controlling terminal with line editing
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal opens a readline instance on stdin/stdout
func NewTerminal() (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		UniqueEditLine:  false,

		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

// ReadLine reads one line of visible input
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	return line, translate(err)
}

// ReadSecret reads one line with the input masked
func (t *Terminal) ReadSecret(prompt string) (string, error) {
	secret, err := t.rl.ReadPassword(prompt)
	return string(secret), translate(err)
}

// Close releases the terminal
func (t *Terminal) Close() error {
	return t.rl.Close()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return ErrAborted
	default:
		return err
	}
}

// Scripted replays fixed answers. Running out of answers behaves like EOF.
type Scripted struct {
	answers []string
	// Prompts records every prompt shown, in order
	Prompts []string
	closed  bool
}

// NewScripted creates a reader that returns answers in order
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// ReadLine returns the next answer
func (s *Scripted) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.closed || len(s.answers) == 0 {
		return "", ErrAborted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// ReadSecret returns the next answer
func (s *Scripted) ReadSecret(prompt string) (string, error) {
	return s.ReadLine(prompt)
}

// Close marks the reader closed
func (s *Scripted) Close() error {
	s.closed = true
	return nil
}

// Remaining returns the number of unused answers
func (s *Scripted) Remaining() int {
	return len(s.answers)
}
