package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles renders shell output. Colors are dropped automatically when out
// is not a terminal.
type styles struct {
	banner  lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{banner: plain, prompt: plain, success: plain, failure: plain, hint: plain}
	}

	return styles{
		banner:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		prompt:  r.NewStyle().Foreground(colorPrimary),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
		hint:    r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// paint styles text line by line so multi-line output is not padded to a
// common width
func paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
