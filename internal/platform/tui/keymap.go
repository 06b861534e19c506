package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
	"github.com/vovakirdan/tui-colorhunt/internal/games/colorhunt"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Colors  []key.Binding // One per palette entry, in palette order
	Guess   key.Binding   // Help entry summarizing Colors
	Start   key.Binding
	Restart key.Binding
	Decline key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Guess, k.Restart, k.Decline, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Colors,
		{k.Start, k.Restart, k.Decline, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	colors := colorhunt.AllColors()
	bindings := make([]key.Binding, len(colors))
	keys := make([]string, len(colors))
	for i, c := range colors {
		k := colorhunt.ShortcutKey(c)
		keys[i] = k
		bindings[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, c.String()),
		)
	}

	return KeyMap{
		Colors: bindings,
		Guess: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp("1-9 0 - =", "pick color"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("y", "r"),
			key.WithHelp("y", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetPhase enables only the bindings that mean something in the given state,
// which also keeps the help line relevant.
func (k *KeyMap) SetPhase(st core.GameState) {
	k.Start.SetEnabled(st.Waiting)
	k.Guess.SetEnabled(!st.GameOver)
	for i := range k.Colors {
		k.Colors[i].SetEnabled(!st.GameOver)
	}
	k.Restart.SetEnabled(st.GameOver)
	k.Decline.SetEnabled(st.GameOver)
}

// MapKey translates a key message to an input frame.
// Returns true as the second value if the key is a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.InputFrame, bool) {
	frame := core.NewInputFrame()

	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
		return frame, true
	}

	switch {
	case key.Matches(msg, k.Start):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
	case key.Matches(msg, k.Decline):
		frame.Set(core.ActionDecline)
	default:
		for i, b := range k.Colors {
			if key.Matches(msg, b) {
				frame.SetChoice(i)
				break
			}
		}
	}

	return frame, false
}
