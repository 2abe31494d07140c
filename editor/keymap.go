package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editor key bindings.
//
// Normal bindings are shared by Normal and Visual mode. Insert bindings only
// cover keys that are not inserted literally.
type KeyMap struct {
	Normal NormalKeyMap
	Insert InsertKeyMap

	// ForceQuit ends the session from any mode.
	ForceQuit key.Binding
}

type NormalKeyMap struct {
	Left, Down, Up, Right key.Binding

	Insert, Visual, Escape key.Binding

	Goto, GotoBottom key.Binding
	Command, Quit    key.Binding
}

type InsertKeyMap struct {
	Left, Down, Up, Right key.Binding

	Escape    key.Binding
	Backspace key.Binding
	Tab       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Normal: NormalKeyMap{
			Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
			Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
			Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
			Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),

			Insert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert mode")),
			Visual: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "visual mode")),
			Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),

			// "g" is the first key of "gg".
			Goto:       key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "go to top")),
			GotoBottom: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "go to bottom")),

			// ":" opens a command; only ":q" is defined.
			Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
			Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp(":q", "quit")),
		},
		Insert: InsertKeyMap{
			Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
			Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
			Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

			Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
			Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
			Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),
		},
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// Resolve turns a key message into the inputs it stands for in mode.
//
// Insert mode yields one TokenRune input per rune, so pasted text arrives as
// a run of single-rune inputs, and unbound keys yield nothing. Normal and
// Visual mode always yield exactly one input, TokenNone for unbound keys.
func (km KeyMap) Resolve(mode Mode, msg tea.KeyMsg) []Input {
	if key.Matches(msg, km.ForceQuit) {
		return []Input{{Token: TokenForceQuit}}
	}
	if mode == ModeInsert {
		return km.Insert.resolve(msg)
	}
	// Unbound keys still produce an input: they may abandon a pending
	// sequence.
	return []Input{{Token: km.Normal.resolve(msg)}}
}

func (km NormalKeyMap) resolve(msg tea.KeyMsg) Token {
	switch {
	case key.Matches(msg, km.Left):
		return TokenLeft
	case key.Matches(msg, km.Down):
		return TokenDown
	case key.Matches(msg, km.Up):
		return TokenUp
	case key.Matches(msg, km.Right):
		return TokenRight
	case key.Matches(msg, km.Insert):
		return TokenInsert
	case key.Matches(msg, km.Visual):
		return TokenVisual
	case key.Matches(msg, km.Escape):
		return TokenEscape
	case key.Matches(msg, km.Goto):
		return TokenGoto
	case key.Matches(msg, km.GotoBottom):
		return TokenGotoBottom
	case key.Matches(msg, km.Command):
		return TokenCommand
	case key.Matches(msg, km.Quit):
		return TokenQuit
	}
	return TokenNone
}

func (km InsertKeyMap) resolve(msg tea.KeyMsg) []Input {
	switch {
	case key.Matches(msg, km.Escape):
		return []Input{{Token: TokenEscape}}
	case key.Matches(msg, km.Backspace):
		return []Input{{Token: TokenBackspace}}
	case key.Matches(msg, km.Tab):
		return []Input{{Token: TokenTab}}
	case key.Matches(msg, km.Left):
		return []Input{{Token: TokenLeft}}
	case key.Matches(msg, km.Down):
		return []Input{{Token: TokenDown}}
	case key.Matches(msg, km.Up):
		return []Input{{Token: TokenUp}}
	case key.Matches(msg, km.Right):
		return []Input{{Token: TokenRight}}
	}

	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return []Input{{Token: TokenRune, Rune: ' '}}
	case tea.KeyRunes:
		out := make([]Input, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == '\n' || r == '\r' {
				continue
			}
			out = append(out, Input{Token: TokenRune, Rune: r})
		}
		return out
	}
	return nil
}
