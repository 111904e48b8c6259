// Package console renders user-facing output. Diagnostics go through the
// logger instead.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const separatorWidth = 50

// Printer writes styled lines to one stream. Styles degrade to plain text
// when the stream is not a color terminal.
type Printer struct {
	out io.Writer

	successStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	warnStyle      lipgloss.Style
	infoStyle      lipgloss.Style
	keyStyle       lipgloss.Style
	highlightStyle lipgloss.Style
	dimStyle       lipgloss.Style
	separatorStyle lipgloss.Style
}

// New creates a Printer for out
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:            out,
		successStyle:   r.NewStyle().Foreground(lipgloss.Color("42")),
		errorStyle:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		warnStyle:      r.NewStyle().Foreground(lipgloss.Color("214")),
		infoStyle:      r.NewStyle().Foreground(lipgloss.Color("39")),
		keyStyle:       r.NewStyle().Foreground(lipgloss.Color("241")),
		highlightStyle: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		dimStyle:       r.NewStyle().Foreground(lipgloss.Color("241")),
		separatorStyle: r.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// Writer returns the underlying stream
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Println writes an unstyled line
func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes unstyled formatted text
func (p *Printer) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// Success prints "✓ message"
func (p *Printer) Success(format string, a ...interface{}) {
	p.Println(p.successStyle.Render("✓ " + fmt.Sprintf(format, a...)))
}

// Error prints "✗ message"
func (p *Printer) Error(format string, a ...interface{}) {
	p.Println(p.errorStyle.Render("✗ " + fmt.Sprintf(format, a...)))
}

// Warn prints "⚠ message"
func (p *Printer) Warn(format string, a ...interface{}) {
	p.Println(p.warnStyle.Render("⚠ " + fmt.Sprintf(format, a...)))
}

// Info prints "ℹ message"
func (p *Printer) Info(format string, a ...interface{}) {
	p.Println(p.infoStyle.Render("ℹ " + fmt.Sprintf(format, a...)))
}

// KeyValue prints an indented "key: value" line
func (p *Printer) KeyValue(key, value string) {
	p.Println("  " + p.keyStyle.Render(key+":") + " " + value)
}

// Separator prints a horizontal rule
func (p *Printer) Separator() {
	p.Println(p.separatorStyle.Render(strings.Repeat("─", separatorWidth)))
}

// Highlight styles text as the active item
func (p *Printer) Highlight(s string) string {
	return p.highlightStyle.Render(s)
}

// Dim styles secondary text
func (p *Printer) Dim(s string) string {
	return p.dimStyle.Render(s)
}

// ProfileLine renders a list entry, marking the active profile with "* ".
func (p *Printer) ProfileLine(name string, active bool) string {
	if active {
		return p.Highlight("* " + name)
	}
	return "  " + name
}
