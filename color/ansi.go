// Package color parses CSS-style color notations into RGB channel triples
// and holds the terminal palette used to render the CLI.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

// High-intensity extension used for headings.
var (
	HiBlue   = New("12")
	HiPurple = New("13")
)

// Lipgloss returns the terminal color matching c.
func (c RGB) Lipgloss() lipgloss.Color {
	return New(c.Hex())
}
