package tui

import (
	"errors"
	"strings"

	"ccconfig/config/models"
	"ccconfig/config/validation"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// FormField represents the index of each form field
const (
	FormFieldName = iota
	FormFieldToken
	FormFieldBaseURL
	FormFieldModel
	FormFieldCount // Total number of fields
)

// FormData represents the data collected from the form
type FormData struct {
	Name    string
	Token   string
	BaseURL string
	Model   string
}

// Validate validates the form data
func (f *FormData) Validate() error {
	checks := []error{
		validation.ValidateName(strings.TrimSpace(f.Name)),
		validation.ValidateToken(f.Token),
		validation.ValidateBaseURL(strings.TrimSpace(f.BaseURL)),
	}
	for _, err := range checks {
		if err != nil {
			return errors.New(strings.TrimPrefix(err.Error(), validation.ErrInvalidInput.Error()+": "))
		}
	}
	return nil
}

// Input returns the form as an add request
func (f *FormData) Input() models.AddProfileInput {
	return models.AddProfileInput{
		Name:    strings.TrimSpace(f.Name),
		Token:   strings.TrimSpace(f.Token),
		BaseURL: strings.TrimSpace(f.BaseURL),
		Model:   strings.TrimSpace(f.Model),
	}
}

// Form styles
var (
	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	formFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Width(14)

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	formHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// FormInputs creates and initializes form input fields
func FormInputs() []textinput.Model {
	inputs := make([]textinput.Model, FormFieldCount)

	inputs[FormFieldName] = textinput.New()
	inputs[FormFieldName].Placeholder = "work"
	inputs[FormFieldName].CharLimit = 50
	inputs[FormFieldName].Width = 40
	inputs[FormFieldName].Prompt = ""

	inputs[FormFieldToken] = textinput.New()
	inputs[FormFieldToken].Placeholder = "sk-ant-..."
	inputs[FormFieldToken].CharLimit = 512
	inputs[FormFieldToken].Width = 40
	inputs[FormFieldToken].EchoMode = textinput.EchoPassword
	inputs[FormFieldToken].EchoCharacter = '•'
	inputs[FormFieldToken].Prompt = ""

	inputs[FormFieldBaseURL] = textinput.New()
	inputs[FormFieldBaseURL].Placeholder = models.DefaultBaseURL
	inputs[FormFieldBaseURL].CharLimit = 256
	inputs[FormFieldBaseURL].Width = 40
	inputs[FormFieldBaseURL].Prompt = ""

	inputs[FormFieldModel] = textinput.New()
	inputs[FormFieldModel].Placeholder = "claude-sonnet-4-20250514"
	inputs[FormFieldModel].CharLimit = 128
	inputs[FormFieldModel].Width = 40
	inputs[FormFieldModel].Prompt = ""

	inputs[FormFieldName].Focus()

	return inputs
}

// GetFormData extracts FormData from form inputs
func GetFormData(inputs []textinput.Model) FormData {
	return FormData{
		Name:    inputs[FormFieldName].Value(),
		Token:   inputs[FormFieldToken].Value(),
		BaseURL: inputs[FormFieldBaseURL].Value(),
		Model:   inputs[FormFieldModel].Value(),
	}
}

// FormLabels returns the labels for each form field
func FormLabels() []string {
	return []string{
		"Name:",
		"Auth Token:",
		"Base URL:",
		"Model:",
	}
}

// FormHints returns the hint text for each form field
func FormHints() []string {
	return []string{
		"Unique profile name",
		"ANTHROPIC_AUTH_TOKEN (required)",
		"ANTHROPIC_BASE_URL (optional, defaults to " + models.DefaultBaseURL + ")",
		"ANTHROPIC_MODEL (optional)",
	}
}

// RenderForm renders the form view with inputs
func RenderForm(inputs []textinput.Model, focusIndex int, title string, errorMsg string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n\n")

	labels := FormLabels()
	hints := FormHints()

	for i, input := range inputs {
		if i == focusIndex {
			b.WriteString(formFocusedStyle.Render(labels[i]))
		} else {
			b.WriteString(formLabelStyle.Render(labels[i]))
		}
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")

		// Hint only for the focused field
		if i == focusIndex {
			b.WriteString(formLabelStyle.Render(""))
			b.WriteString(" ")
			b.WriteString(formHintStyle.Render(hints[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(formErrorStyle.Render("✗ " + errorMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab/↓: next │ Shift+Tab/↑: previous │ Enter: save │ Esc: cancel"))

	return b.String()
}

// NextFormField moves focus to the next form field
func NextFormField(inputs []textinput.Model, currentFocus int) int {
	inputs[currentFocus].Blur()
	nextFocus := (currentFocus + 1) % len(inputs)
	inputs[nextFocus].Focus()
	return nextFocus
}

// PrevFormField moves focus to the previous form field
func PrevFormField(inputs []textinput.Model, currentFocus int) int {
	inputs[currentFocus].Blur()
	prevFocus := currentFocus - 1
	if prevFocus < 0 {
		prevFocus = len(inputs) - 1
	}
	inputs[prevFocus].Focus()
	return prevFocus
}
