package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/shade"
	"github.com/twshades/twshades/style"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	title := style.Title
	if b.state == errorState {
		title = style.ErrorTitle
	}

	mode := "Shades"
	if !b.options.Shades.MakeShades {
		mode = "Single"
	}

	lines := []string{
		title(mode),
		"",
		b.inputC.View(),
		"",
	}

	switch b.state {
	case emptyState:
		lines = append(lines, style.Faint("Type a hex, rgb() or hsl() color"))
	case errorState:
		lines = append(lines, b.viewError())
	case previewState:
		lines = append(lines, b.viewPreview()...)
	}

	return b.renderLines(lines)
}

func (b *statefulBubble) viewPreview() []string {
	scale, ok := b.result.Left()
	if !ok {
		return []string{style.Bold(b.result.MustRight())}
	}

	width := viper.GetInt(key.TUISwatchWidth)
	return lo.Map(scale[:], func(s shade.Swatch, _ int) string {
		return style.Swatch(s.Color, s.Key(), width) + " " + style.Faint(s.String())
	})
}

func (b *statefulBubble) viewError() string {
	msg := icon.Get(icon.Fail) + " " + b.lastError.Error()
	if b.width > 0 {
		msg = wrap.String(msg, b.width)
	}
	return style.Fg(color.Red)(msg)
}

func (b *statefulBubble) renderLines(lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if b.height > h+1 {
		l += strings.Repeat("\n", b.height-h-1)
	}
	l += "\n" + b.helpC.View(b.keymap)

	return paddingStyle.Render(l)
}
