package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/samber/lo"
	"github.com/twshades/twshades/history"
	"github.com/twshades/twshades/shade"
	"github.com/twshades/twshades/util"
)

// statefulBubble is the picker model. Every edit of the input re-derives the
// preview, so the state always matches the text in inputC.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	inputC textinput.Model
	helpC  help.Model

	options   Options
	result    shade.Result
	lastError error
	accepted  bool

	width, height int
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.inputC.Width = b.width
	b.helpC.Width = b.width
}

func (b *statefulBubble) selection() *Selection {
	if !b.accepted {
		return nil
	}

	return &Selection{
		Input:  b.input(),
		Shades: b.options.Shades,
	}
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:  newStatefulKeymap(),
		options: *options,
		helpC:   help.New(),
	}

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "#3498db, rgb(52, 152, 219) or hsl(204, 70%, 53%)"
	bubble.inputC.CharLimit = 64
	bubble.inputC.Prompt = "> "
	bubble.inputC.KeyMap.AcceptSuggestion = bubble.keymap.acceptSuggestion
	bubble.inputC.ShowSuggestions = true
	bubble.inputC.SetSuggestions(suggestions())
	bubble.inputC.SetValue(options.Input)
	bubble.inputC.Focus()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.refresh()
	return &bubble
}

func suggestions() []string {
	recent, err := history.Recent(0)
	if err != nil {
		return nil
	}

	return lo.Map(recent, func(e *history.Entry, _ int) string {
		return e.Input
	})
}
