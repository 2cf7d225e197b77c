package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme holds the color scheme for console output. Styling is skipped
// entirely when stdout is not a terminal so piped output stays plain.
type Theme struct {
	Success lipgloss.Color
	Created lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color

	enabled bool
}

// newTheme builds the default theme, enabled only for terminal output.
func newTheme() Theme {
	return Theme{
		Success: lipgloss.Color("#00D787"), // green
		Created: lipgloss.Color("#5FAFD7"), // light blue
		Error:   lipgloss.Color("#FF005F"), // red
		Hint:    lipgloss.Color("#6C6C6C"), // dim gray
		enabled: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (t Theme) render(c lipgloss.Color, s string) string {
	if !t.enabled {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

func (t Theme) success(s string) string { return t.render(t.Success, s) }
func (t Theme) created(s string) string { return t.render(t.Created, s) }
func (t Theme) hint(s string) string    { return t.render(t.Hint, s) }
