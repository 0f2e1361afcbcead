// Package session holds the interactive state of one calculator screen.
//
// A Session stores only primary inputs and re-derives the breakdown after
// every committed mutation. It is owned by a single goroutine and is not
// safe for concurrent use.
package session

import (
	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/models"
)

// Default returns the state of a fresh screen: no bill, 18% preset, one person.
func Default() models.State {
	return models.State{
		BillAmount:  "",
		Tip:         models.Preset(calculator.DefaultTipPercent),
		PeopleCount: calculator.MinPeople,
	}
}

// Session is the calculator state plus its derived breakdown.
type Session struct {
	state     models.State
	breakdown models.Breakdown

	// OnChange, if set, is called after each committed change.
	OnChange func(models.State, models.Breakdown)
}

// New creates a session in the default state.
func New() *Session {
	s := &Session{state: Default()}
	s.recompute()
	return s
}

// State returns a copy of the current inputs.
func (s *Session) State() models.State {
	return s.state
}

// Breakdown returns the derived outputs for the current inputs.
func (s *Session) Breakdown() models.Breakdown {
	return s.breakdown
}

// Display returns the rendered outputs for the current inputs.
func (s *Session) Display() models.Display {
	return calculator.Render(s.state, s.breakdown)
}

// SetBillText sanitizes raw bill text and commits it.
// Returns false if the edit was rejected or changed nothing.
func (s *Session) SetBillText(raw string) bool {
	next, ok := calculator.NormalizeBill(raw)
	if !ok || next == s.state.BillAmount {
		return false
	}
	s.state.BillAmount = next
	s.commit()
	return true
}

// SelectPreset switches to a preset tip and clears the custom field.
// Values that are not presets are ignored.
func (s *Session) SelectPreset(percent int) bool {
	if !calculator.IsPreset(percent) {
		return false
	}
	return s.setTip(models.Preset(percent))
}

// SetCustomTipText sanitizes raw custom tip text and, if accepted, makes the
// custom tip active. A rejected edit leaves the tip selection untouched.
func (s *Session) SetCustomTipText(raw string) bool {
	next, ok := calculator.NormalizeCustomTip(raw)
	if !ok {
		return false
	}
	return s.setTip(models.Custom(next))
}

// IncrementPeople adds one person up to the maximum.
func (s *Session) IncrementPeople() bool {
	return s.setPeople(calculator.IncrementPeople(s.state.PeopleCount))
}

// DecrementPeople removes one person down to the minimum.
func (s *Session) DecrementPeople() bool {
	return s.setPeople(calculator.DecrementPeople(s.state.PeopleCount))
}

// Reset restores the default state.
func (s *Session) Reset() bool {
	if s.state == Default() {
		return false
	}
	s.state = Default()
	s.commit()
	return true
}

func (s *Session) setTip(tip models.TipSelection) bool {
	if tip == s.state.Tip {
		return false
	}
	s.state.Tip = tip
	s.commit()
	return true
}

func (s *Session) setPeople(n int) bool {
	if n == s.state.PeopleCount {
		return false
	}
	s.state.PeopleCount = n
	s.commit()
	return true
}

func (s *Session) commit() {
	s.recompute()
	if s.OnChange != nil {
		s.OnChange(s.state, s.breakdown)
	}
}

func (s *Session) recompute() {
	s.breakdown = calculator.CalculateState(s.state)
}
