// Package keys maps terminal key presses to dispatcher events.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quanticsoul4772/pcode-go/app"
)

// KeyMap holds the key bindings for both input modes
type KeyMap struct {
	// Normal mode
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Delete  key.Binding
	Theme   key.Binding
	Help    key.Binding

	// Insert mode
	Accept    key.Binding
	Abort     key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "d"),
			key.WithHelp("d", "delete"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "done"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel, k.Help}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Cancel, k.Delete},
		{k.Theme, k.Help},
	}
}

// InsertHelp returns keybindings shown while editing text
func (k KeyMap) InsertHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Abort, k.Backspace}
}

// Translate returns the events produced by msg in the given mode. It
// returns nil for keys with no meaning in that mode. Pasted text yields one
// event per rune.
func (k KeyMap) Translate(msg tea.KeyMsg, mode app.InputMode) []app.Event {
	if mode == app.ModeInsert {
		return k.translateInsert(msg)
	}

	switch {
	case key.Matches(msg, k.Up):
		return event(app.EventMoveUp)
	case key.Matches(msg, k.Down):
		return event(app.EventMoveDown)
	case key.Matches(msg, k.Confirm):
		return event(app.EventConfirm)
	case key.Matches(msg, k.Cancel):
		return event(app.EventCancel)
	case key.Matches(msg, k.Delete):
		return event(app.EventDelete)
	}
	return nil
}

func (k KeyMap) translateInsert(msg tea.KeyMsg) []app.Event {
	switch {
	case key.Matches(msg, k.Accept):
		return event(app.EventConfirm)
	case key.Matches(msg, k.Abort):
		return event(app.EventCancel)
	case key.Matches(msg, k.Backspace):
		return event(app.EventBackspace)
	}

	switch msg.Type {
	case tea.KeySpace:
		return []app.Event{app.Char(' ')}
	case tea.KeyRunes:
		events := make([]app.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, app.Char(r))
		}
		return events
	}
	return nil
}

func event(kind app.EventKind) []app.Event {
	return []app.Event{{Kind: kind}}
}
