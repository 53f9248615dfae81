package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds lipgloss colors matching a Theme.
type Palette struct {
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
}

var (
	// DarkPalette accompanies DarkTheme and LightTheme.
	DarkPalette = Palette{
		Border: lipgloss.Color("#00AFFF"),
		Accent: lipgloss.Color("#5FFF00"),
		Text:   lipgloss.Color("#E0E0E0"),
		Dim:    lipgloss.Color("#8A8A8A"),
	}

	// NoColorPalette renders with the terminal's default colors.
	NoColorPalette = Palette{
		Border: lipgloss.NoColor{},
		Accent: lipgloss.NoColor{},
		Text:   lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
	}
)

// CurrentPalette returns the palette matching the active theme.
func CurrentPalette() Palette {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorPalette
	}
	return DarkPalette
}

// RenderBanner draws title and the optional subtitle lines inside a rounded
// box.
func RenderBanner(title string, lines ...string) string {
	p := CurrentPalette()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(p.Dim)

	body := []string{titleStyle.Render(title)}
	for _, l := range lines {
		body = append(body, dimStyle.Render(l))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2).
		Render(strings.Join(body, "\n"))
}

// RenderKeyValues lays out label/value rows with labels padded to a common
// width inside a normal-bordered box.
func RenderKeyValues(heading string, rows [][2]string) string {
	p := CurrentPalette()
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	label := lipgloss.NewStyle().Foreground(p.Dim).Width(width + 2)
	value := lipgloss.NewStyle().Foreground(p.Text)

	lines := []string{lipgloss.NewStyle().Bold(true).Render(heading)}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(r[0]), value.Render(r[1])))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
