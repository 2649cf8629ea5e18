// Package ui holds the lipgloss styles the needsolver CLI renders
// questions, rankings, and explanations with.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette — a single muted-blue accent, consistent across ranking,
// question, and explanation output.
const (
	ColorAccent = "75"  // primary accent — question prompts, top rank
	ColorDim    = "245" // secondary text
	ColorGood   = "78"  // pros / high similarity
	ColorBad    = "203" // cons / low similarity
	ColorWarn   = "220" // conflicts
)

// Styles holds the named styles the CLI's renderers reach for.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Dim      lipgloss.Style
	RankHead lipgloss.Style
	Pro      lipgloss.Style
	Con      lipgloss.Style
	Conflict lipgloss.Style
}

// Default returns the colored style set.
func Default() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),
		RankHead: lipgloss.NewStyle().Bold(true),
		Pro:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGood)),
		Con:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBad)),
		Conflict: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarn)),
	}
}

// Plain returns an unstyled set, for --no-color or non-terminal output.
func Plain() Styles {
	return Styles{
		Title:    lipgloss.NewStyle(),
		Prompt:   lipgloss.NewStyle(),
		Dim:      lipgloss.NewStyle(),
		RankHead: lipgloss.NewStyle(),
		Pro:      lipgloss.NewStyle(),
		Con:      lipgloss.NewStyle(),
		Conflict: lipgloss.NewStyle(),
	}
}

// For returns Plain() if noColor, else Default().
func For(noColor bool) Styles {
	if noColor {
		return Plain()
	}
	return Default()
}
