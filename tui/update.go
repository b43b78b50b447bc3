package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/twshades/twshades/shade"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.toggleSingle):
			b.options.Shades.MakeShades = !b.options.Shades.MakeShades
			b.refresh()
			return b, nil
		case key.Matches(msg, b.keymap.confirm):
			if b.state != previewState {
				return b, nil
			}

			b.accepted = true
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.refresh()
	return b, cmd
}

func (b *statefulBubble) input() string {
	return strings.TrimSpace(b.inputC.Value())
}

// refresh regenerates the preview from the current input.
func (b *statefulBubble) refresh() {
	input := b.input()
	if input == "" {
		b.lastError = nil
		b.setState(emptyState)
		return
	}

	result, err := shade.Make(input, b.options.Shades)
	if err != nil {
		b.lastError = err
		b.setState(errorState)
		return
	}

	b.result = result
	b.lastError = nil
	b.setState(previewState)
}
