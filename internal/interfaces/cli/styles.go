package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorFailed = lipgloss.Color("#e53935")
	colorCount  = lipgloss.Color("#8BC34A")
	colorOK     = lipgloss.Color("#00ACC1")
	colorMuted  = lipgloss.Color("#9E9E9E")
)

// Styles colours report output. Colour is dropped automatically when the
// writer is not a terminal.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Failed lipgloss.Style
	OK     lipgloss.Style
	Count  lipgloss.Style
	Muted  lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	renderer := lipgloss.NewRenderer(w)

	return Styles{
		Title: renderer.NewStyle().
			Bold(true),
		Header: renderer.NewStyle().
			Foreground(colorMuted).
			Bold(true),
		Failed: renderer.NewStyle().
			Foreground(colorFailed),
		OK: renderer.NewStyle().
			Foreground(colorOK),
		Count: renderer.NewStyle().
			Foreground(colorCount).
			Bold(true),
		Muted: renderer.NewStyle().
			Foreground(colorMuted),
	}
}
