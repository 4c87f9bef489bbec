// Package icon renders the status symbols printed by the commands.
package icon

import (
	"github.com/grngxd/tiramisu/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the values accepted by the icons.variant setting.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) render(variant string) string {
	switch variant {
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

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.render(viper.GetString(key.IconsVariant))
}

// Icon identifies a registered UI symbol.
type Icon int

// Registered icons.
const (
	Success Icon = iota + 1
	Fail
	Progress
	Warn
	Bridge
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "Success",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "■",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "Error",
		kaomoji: "(×_×)",
		squares: "□",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf110",
		plain:   "...",
		kaomoji: "(・_・;)",
		squares: "▨",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "\uf071",
		plain:   "Warning",
		kaomoji: "(°ロ°)",
		squares: "◩",
	},
	Bridge: {
		emoji:   "🍰",
		nerd:    "\uf0c1",
		plain:   "Bridge",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "▤",
	},
}
