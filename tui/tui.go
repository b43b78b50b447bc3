// Package tui provides the interactive color picker with a live shade preview.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/twshades/twshades/shade"
)

// Options configures the picker.
type Options struct {
	// Input pre-fills the color field.
	Input  string
	Shades shade.Options
}

// Selection is the color the user accepted.
type Selection struct {
	Input string
	// Shades is options.Shades as toggled by the user.
	Shades shade.Options
}

// Run starts the picker and blocks until the user accepts a color or quits.
// The returned Selection is nil when the user quit.
func Run(options *Options) (*Selection, error) {
	bubble := newBubble(options)

	model, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	return model.(*statefulBubble).selection(), nil
}
