package presentation

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#696969", Dark: "#696969"} // Context lines, hunk markers
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"} // Headers
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Added lines, passing checks
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"} // Domain names in reports
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Removed lines, violations
)

// Styles holds the output styles bound to one writer.
type Styles struct {
	Added   lipgloss.Style
	Removed lipgloss.Style
	Context lipgloss.Style
	Header  lipgloss.Style
	Domain  lipgloss.Style
	OK      lipgloss.Style
	Fail    lipgloss.Style
}

// NewStyles builds styles for w. color is "always", "never", or "auto";
// auto lets the renderer detect whether w is a color terminal.
func NewStyles(w io.Writer, color string) Styles {
	r := lipgloss.NewRenderer(w)
	switch strings.ToLower(color) {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Added:   r.NewStyle().Foreground(StatusSuccessColor),
		Removed: r.NewStyle().Foreground(StatusErrorColor),
		Context: r.NewStyle().Foreground(TextMutedColor),
		Header:  r.NewStyle().Foreground(TextSecondaryColor).Bold(true),
		Domain:  r.NewStyle().Foreground(StatusWarningColor),
		OK:      r.NewStyle().Foreground(StatusSuccessColor).Bold(true),
		Fail:    r.NewStyle().Foreground(StatusErrorColor).Bold(true),
	}
}
