package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header        *lipgloss.Style
	Slot          *lipgloss.Style
	BoundSlot     *lipgloss.Style
	EmptySlot     *lipgloss.Style
	Cursor        *lipgloss.Style
	PlayerSlot    *lipgloss.Style
	Divider       *lipgloss.Style
	Detail        *lipgloss.Style
	Hint          *lipgloss.Style
	Held          *lipgloss.Style
	Status        *lipgloss.Style
	Footer        *lipgloss.Style
	Prompt        *lipgloss.Style
	PromptIdle    *lipgloss.Style
	Suggestion    *lipgloss.Style
	TopSuggestion *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Slot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	BoundSlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	EmptySlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	PlayerSlot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Detail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Held: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PromptIdle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	TopSuggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
}

// Default exposes the standard style set used across the UI.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
