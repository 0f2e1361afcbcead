package session

import (
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned by Apply for an event type it does not handle.
var ErrUnknownEvent = errors.New("unknown event type")

// EventType names a discrete UI event.
type EventType string

const (
	EventBill      EventType = "bill"
	EventPreset    EventType = "preset"
	EventCustomTip EventType = "custom_tip"
	EventIncrement EventType = "increment"
	EventDecrement EventType = "decrement"
	EventReset     EventType = "reset"
)

// Event is one user action. Text carries the raw field contents for
// text-change events; Value carries the percentage for preset presses.
type Event struct {
	Type  EventType
	Text  string
	Value int
}

// Apply dispatches an event to the matching entry point and reports whether
// the state changed.
func (s *Session) Apply(ev Event) (bool, error) {
	switch ev.Type {
	case EventBill:
		return s.SetBillText(ev.Text), nil
	case EventPreset:
		return s.SelectPreset(ev.Value), nil
	case EventCustomTip:
		return s.SetCustomTipText(ev.Text), nil
	case EventIncrement:
		return s.IncrementPeople(), nil
	case EventDecrement:
		return s.DecrementPeople(), nil
	case EventReset:
		return s.Reset(), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}
