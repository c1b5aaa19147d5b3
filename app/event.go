package app

import "fmt"

// EventKind is a logical input, independent of the key that produced it
type EventKind int

const (
	EventConfirm EventKind = iota
	EventCancel
	EventMoveUp
	EventMoveDown
	EventDelete
	EventChar
	EventBackspace
)

func (k EventKind) String() string {
	switch k {
	case EventConfirm:
		return "confirm"
	case EventCancel:
		return "cancel"
	case EventMoveUp:
		return "up"
	case EventMoveDown:
		return "down"
	case EventDelete:
		return "delete"
	case EventChar:
		return "char"
	case EventBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

// Event is one logical input. Rune is set for EventChar only.
type Event struct {
	Kind EventKind
	Rune rune
}

// Char returns the event for typing r
func Char(r rune) Event {
	return Event{Kind: EventChar, Rune: r}
}

func (e Event) String() string {
	if e.Kind == EventChar {
		return fmt.Sprintf("char(%q)", e.Rune)
	}
	return e.Kind.String()
}

// Effect tells the event loop what to do after a dispatch
type Effect int

const (
	EffectNone Effect = iota
	EffectExit
)
