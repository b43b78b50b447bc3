// Package style provides a functional API for composing lipgloss styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/twshades/twshades/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function applying the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Common typographic styles.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a padded banner in the error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Contrast returns black or white, whichever reads better on c.
// The split is on CIE L*, so mid-tone blues get white text and yellows black.
func Contrast(c color.RGB) color.RGB {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()

	if l > 0.6 {
		return color.Black
	}
	return color.White
}

// Swatch renders label on a block of c, width cells wide.
func Swatch(c color.RGB, label string, width int) string {
	return Colored(Contrast(c).Lipgloss(), c.Lipgloss()).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}
