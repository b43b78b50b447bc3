// Package icon renders UI symbols in the user's preferred variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/twshades/twshades/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Lua
	History
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "Success",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "Fail",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(o_O)",
		squares: "🟦",
	},
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(◕‿◕)",
		squares: "🟪",
	},
	History: {
		emoji:   "🕘",
		nerd:    "",
		plain:   "*",
		kaomoji: "(￣▽￣)",
		squares: "🟨",
	},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns i rendered in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
