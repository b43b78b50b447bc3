package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/style"
)

type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	toggleSingle,
	acceptSuggestion key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Green)("enter"), style.Fg(color.Green)("use color")),
		),
		toggleSingle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle single"),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete from history"),
		),
	}
}

func (k *statefulKeymap) help() []key.Binding {
	switch k.state {
	case previewState:
		return []key.Binding{k.confirm, k.toggleSingle, k.acceptSuggestion, k.quit}
	default:
		return []key.Binding{k.toggleSingle, k.acceptSuggestion, k.quit}
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	return k.help()
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.help()}
}
