package tui

import (
	"fmt"
	"strings"

	"ccconfig/config/models"
	"ccconfig/internal/platform"
	"ccconfig/internal/utils"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	activeSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Background(lipgloss.Color("57")).
				Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// RenderMainView renders the main list view
func (m Model) RenderMainView() string {
	var b strings.Builder
	width := m.getEffectiveWidth(40)

	b.WriteString(titleStyle.Render("Claude Code profiles"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n\n")

	if len(m.profiles) == 0 {
		b.WriteString(dimStyle.Render("No profiles found, press 'a' to add one"))
		b.WriteString("\n")
	} else {
		visibleHeight := m.getVisibleListHeight()
		startIdx := m.scrollOffset
		endIdx := startIdx + visibleHeight
		if endIdx > len(m.profiles) {
			endIdx = len(m.profiles)
		}

		if startIdx > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more...", startIdx)))
			b.WriteString("\n")
		}

		for i := startIdx; i < endIdx; i++ {
			b.WriteString(m.renderProfileLine(i, m.profiles[i]))
			b.WriteString("\n")
		}

		if endIdx < len(m.profiles) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more...", len(m.profiles)-endIdx)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.RenderStatusBar())

	return b.String()
}

// getEffectiveWidth returns the rendering width, capped for readability
func (m Model) getEffectiveWidth(defaultWidth int) int {
	if m.width <= 0 {
		return defaultWidth
	}
	maxWidth := 80
	if m.width < maxWidth {
		return m.width - 2
	}
	return maxWidth
}

// renderProfileLine renders a single profile line in the list
func (m Model) renderProfileLine(index int, e Entry) string {
	isSelected := index == m.cursor
	isActive := e.Name == m.current

	cursor := "  "
	if isSelected {
		cursor = "> "
	}
	activeMarker := "  "
	if isActive {
		activeMarker = "* "
	}

	modelInfo := ""
	if e.Profile.Model != "" {
		modelInfo = fmt.Sprintf(" [%s]", e.Profile.Model)
	}

	urlInfo := ""
	if e.Profile.BaseURL != "" {
		urlInfo = fmt.Sprintf(" (%s)", m.truncateText(e.Profile.BaseURL, 30))
	}

	content := cursor + activeMarker + e.Name + modelInfo + urlInfo

	switch {
	case isSelected && isActive:
		return activeSelectedStyle.Render(content)
	case isSelected:
		return selectedStyle.Render(content)
	case isActive:
		return activeStyle.Render(content)
	}
	return normalStyle.Render(content)
}

// Detail view styles
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(12)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	detailActiveTagStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Background(lipgloss.Color("22")).
				Bold(true).
				Padding(0, 1)

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	detailMaskedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// RenderDetailView renders the detail view
func (m Model) RenderDetailView() string {
	if m.selected < 0 || m.selected >= len(m.profiles) {
		return dimStyle.Render("No profile selected, press Enter on a profile to see its details")
	}

	var b strings.Builder
	e := m.profiles[m.selected]
	width := m.getEffectiveWidth(40)

	b.WriteString(titleStyle.Render("Profile " + e.Name))
	if e.Name == m.current {
		b.WriteString("  ")
		b.WriteString(detailActiveTagStyle.Render("★ active"))
	}
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n\n")

	b.WriteString(detailSectionStyle.Render("Settings"))
	b.WriteString("\n")
	m.writeDetail(&b, "Base URL:", e.Profile.BaseURL, false, width)
	m.writeDetail(&b, "Token:", e.Profile.AuthToken, true, width)
	m.writeDetail(&b, "Model:", e.Profile.Model, false, width)
	b.WriteString("\n")

	// The token is masked here as well; `use` prints the real command.
	masked := e.Profile
	if masked.AuthToken != "" {
		masked.AuthToken = utils.MaskToken(masked.AuthToken)
	}
	b.WriteString(detailSectionStyle.Render("Environment"))
	b.WriteString("\n")
	for _, line := range platform.EnvCommands(m.shell, masked) {
		b.WriteString(detailMaskedStyle.Render("  " + m.truncateText(line, width-2)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("u: use │ d: remove │ p: ping │ Esc: back"))

	return b.String()
}

func (m Model) writeDetail(b *strings.Builder, label, value string, secret bool, width int) {
	b.WriteString(detailLabelStyle.Render(label))
	switch {
	case value == "":
		b.WriteString(dimStyle.Render("(not set)"))
	case secret:
		b.WriteString(detailMaskedStyle.Render(utils.MaskToken(value)))
	default:
		b.WriteString(detailValueStyle.Render(m.truncateText(value, width-14)))
	}
	b.WriteString("\n")
}

// truncateText truncates text to fit within maxWidth, adding ellipsis if needed
func (m Model) truncateText(text string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if len(text) <= maxWidth {
		return text
	}
	return text[:maxWidth-3] + "..."
}

// RenderDeleteConfirm renders the delete confirmation dialog
func (m Model) RenderDeleteConfirm() string {
	var b strings.Builder
	width := m.getEffectiveWidth(40)

	b.WriteString(titleStyle.Render("Remove profile"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n\n")

	if m.hasCursor() {
		e := m.profiles[m.cursor]

		b.WriteString(errorStyle.Render("⚠ This cannot be undone"))
		b.WriteString("\n\n")
		b.WriteString(normalStyle.Render("About to remove: "))
		b.WriteString(selectedStyle.Render(e.Name))
		b.WriteString("\n\n")

		if e.Profile.BaseURL != "" {
			b.WriteString(dimStyle.Render("Base URL: " + m.truncateText(e.Profile.BaseURL, width-12)))
			b.WriteString("\n")
		}
		if e.Profile.Model != "" {
			b.WriteString(dimStyle.Render("Model: " + m.truncateText(e.Profile.Model, width-8)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(errorStyle.Render("No profile selected"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y: remove │ n/Esc: cancel"))

	return b.String()
}

// RenderHelpView renders the help panel with scrolling support
func (m Model) RenderHelpView() string {
	var b strings.Builder
	width := m.getEffectiveWidth(50)

	b.WriteString(titleStyle.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	helpLines := m.buildHelpLines()

	visibleHeight := m.getVisibleHelpHeight()
	startIdx := m.helpScrollOffset
	endIdx := startIdx + visibleHeight
	if endIdx > len(helpLines) {
		endIdx = len(helpLines)
	}

	if startIdx > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more lines...", startIdx)))
	}
	b.WriteString("\n")

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(helpLines[i])
	}

	if endIdx < len(helpLines) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more lines...", len(helpLines)-endIdx)))
		b.WriteString("\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: scroll │ q/Esc: back"))

	return b.String()
}

// buildHelpLines builds all help content lines for scrolling
func (m Model) buildHelpLines() []string {
	var lines []string

	lines = append(lines, detailSectionStyle.Render("Navigation")+"\n")
	lines = append(lines, renderHelpLine("j / ↓", "move down"))
	lines = append(lines, renderHelpLine("k / ↑", "move up"))
	lines = append(lines, renderHelpLine("g", "jump to top"))
	lines = append(lines, renderHelpLine("G", "jump to bottom"))
	lines = append(lines, renderHelpLine("Enter", "show profile details"))
	lines = append(lines, "\n")

	lines = append(lines, detailSectionStyle.Render("Profiles")+"\n")
	lines = append(lines, renderHelpLine("u", "make the profile active"))
	lines = append(lines, renderHelpLine("a", "add a profile"))
	lines = append(lines, renderHelpLine("d", "remove the profile"))
	lines = append(lines, renderHelpLine("p", "check the endpoint"))
	lines = append(lines, renderHelpLine("r", "reload from disk"))
	lines = append(lines, "\n")

	lines = append(lines, detailSectionStyle.Render("General")+"\n")
	lines = append(lines, renderHelpLine("?", "show this help"))
	lines = append(lines, renderHelpLine("Esc", "back / cancel"))
	lines = append(lines, renderHelpLine("q", "quit"))
	lines = append(lines, "\n")

	return lines
}

// renderHelpLine renders a single help line with key and description
func renderHelpLine(key, desc string) string {
	keyStyled := helpKeyStyle.Render(fmt.Sprintf("  %-10s", key))
	descStyled := normalStyle.Render(desc)
	return fmt.Sprintf("%s %s\n", keyStyled, descStyled)
}

// RenderStatusBar renders the bottom status bar
func (m Model) RenderStatusBar() string {
	var b strings.Builder

	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errorMsg))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(messageStyle.Render("✓ " + m.message))
		b.WriteString("\n")
	}
	if m.errorMsg != "" || m.message != "" {
		b.WriteString("\n")
	}

	keys := DefaultKeyMap()
	shortHelp := keys.ShortHelp()
	hints := make([]string, 0, len(shortHelp))
	for _, k := range shortHelp {
		hints = append(hints, helpKeyStyle.Render(k.Help().Key)+" "+helpStyle.Render(k.Help().Desc))
	}
	b.WriteString(strings.Join(hints, helpStyle.Render(" │ ")))

	return b.String()
}

func (m Model) writePingTarget(b *strings.Builder, width int) {
	e, ok := m.entry(m.pingTarget)
	if !ok {
		return
	}
	b.WriteString(dimStyle.Render("Profile: " + e.Name))
	b.WriteString("\n")
	if e.Profile.BaseURL != "" {
		b.WriteString(dimStyle.Render("URL: " + m.truncateText(e.Profile.BaseURL, width-6)))
	} else {
		b.WriteString(dimStyle.Render("URL: " + models.DefaultBaseURL + " (default)"))
	}
	b.WriteString("\n\n")
}

func (m Model) entry(name string) (Entry, bool) {
	if i := m.indexOf(name); i >= 0 {
		return m.profiles[i], true
	}
	return Entry{}, false
}

// RenderPingTestingView renders the ping in progress view
func (m Model) RenderPingTestingView() string {
	var b strings.Builder
	width := m.getEffectiveWidth(40)

	b.WriteString(titleStyle.Render("Connectivity check"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n\n")

	m.writePingTarget(&b, width)

	b.WriteString(messageStyle.Render("⏳ Checking endpoint..."))
	b.WriteString("\n")

	return b.String()
}

// RenderPingResultView renders the ping result view
func (m Model) RenderPingResultView() string {
	var b strings.Builder
	width := m.getEffectiveWidth(40)

	b.WriteString(titleStyle.Render("Connectivity check"))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n\n")

	m.writePingTarget(&b, width)

	if r := m.pingResult; r != nil {
		if r.Reachable {
			b.WriteString(messageStyle.Render("✓ Endpoint reachable"))
			b.WriteString("\n\n")
			if r.StatusCode != 0 {
				b.WriteString(normalStyle.Render(fmt.Sprintf("Status: %d %s", r.StatusCode, r.StatusText)))
				b.WriteString("\n")
			}
			b.WriteString(normalStyle.Render(fmt.Sprintf("Latency: %dms", r.DurationMs)))
			b.WriteString("\n")
		} else {
			b.WriteString(errorStyle.Render("✗ Endpoint unreachable"))
			b.WriteString("\n\n")
			if r.Error != "" {
				b.WriteString(errorStyle.Render(m.truncateText(r.Error, width)))
				b.WriteString("\n")
			}
			if r.DurationMs > 0 {
				b.WriteString(dimStyle.Render(fmt.Sprintf("After %dms", r.DurationMs)))
				b.WriteString("\n")
			}
		}
		if r.UserMessage != "" {
			b.WriteString(dimStyle.Render(m.truncateText(r.UserMessage, width)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r: retry │ Enter/Esc: back"))

	return b.String()
}
