package ui

import "github.com/charmbracelet/lipgloss"

// ANSI 256 palette indexes matching DarkTheme and LightTheme.
var palette = map[string]struct{ primary, success, failure, dim lipgloss.Color }{
	"dark":  {primary: "39", success: "82", failure: "196", dim: "245"},
	"light": {primary: "27", success: "28", failure: "124", dim: "240"},
}

// Styles groups the lipgloss styles used for section headings and status
// lines.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// CurrentStyles builds Styles for the active theme. Under NoColorTheme every
// style renders its text unchanged.
func CurrentStyles() Styles {
	p, ok := palette[GetCurrentTheme().Name]
	if !ok {
		plain := lipgloss.NewStyle()
		return Styles{Heading: plain, Label: plain, Success: plain, Failure: plain}
	}
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(p.primary),
		Label:   lipgloss.NewStyle().Foreground(p.dim),
		Success: lipgloss.NewStyle().Bold(true).Foreground(p.success),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(p.failure),
	}
}

// Heading renders a section title such as "--- Result ---".
func Heading(title string) string {
	return CurrentStyles().Heading.Render("--- " + title + " ---")
}
