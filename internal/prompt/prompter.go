package prompt

import (
	"errors"
	"strings"

	"ccconfig/internal/console"
)

// Check validates an answer. A nil Check accepts anything.
type Check func(answer string) error

// Prompter asks questions until it gets an acceptable answer
type Prompter struct {
	reader  LineReader
	printer *console.Printer
}

// NewPrompter creates a Prompter. Rejected answers are reported on printer.
func NewPrompter(reader LineReader, printer *console.Printer) *Prompter {
	return &Prompter{reader: reader, printer: printer}
}

// Required asks until a non-empty answer passes check
func (p *Prompter) Required(question string, check Check) (string, error) {
	return p.ask(p.reader.ReadLine, question, check, false)
}

// Secret is Required with masked input
func (p *Prompter) Secret(question string, check Check) (string, error) {
	return p.ask(p.reader.ReadSecret, question, check, false)
}

// Optional accepts an empty answer; a non-empty one must pass check
func (p *Prompter) Optional(question string, check Check) (string, error) {
	return p.ask(p.reader.ReadLine, question, check, true)
}

// Confirm asks a yes/no question; only "y" and "yes" count as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.reader.ReadLine(question + " (y/N): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) ask(read func(string) (string, error), question string, check Check, optional bool) (string, error) {
	for {
		answer, err := read(question + ": ")
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)

		if answer == "" {
			if optional {
				return "", nil
			}
			p.printer.Error("A value is required")
			continue
		}

		if check != nil {
			if err := check(answer); err != nil {
				p.printer.Error("%s", reason(err))
				continue
			}
		}
		return answer, nil
	}
}

// reason strips the sentinel prefix from a validation error for display
func reason(err error) string {
	msg := err.Error()
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		msg = strings.TrimPrefix(msg, unwrapped.Error()+": ")
	}
	return msg
}
