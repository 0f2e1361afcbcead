package models

// State holds the primary inputs of the calculator.
// Derived values are never stored here; see Breakdown.
type State struct {
	// BillAmount is the sanitized bill text, e.g. "45.50".
	// Empty means nothing has been typed and counts as 0.
	BillAmount string

	// Tip is the current tip selection.
	Tip TipSelection

	// PeopleCount is the party size, always within [1, 20].
	PeopleCount int
}

// Breakdown is the output of the calculation engine.
// Values keep full float64 precision; rounding happens only in Display.
type Breakdown struct {
	TipAmount float64
	Total     float64
	PerPerson float64
}

// Display is the rendered form of a State and its Breakdown.
// Currency strings carry a "$" prefix and exactly two decimal places.
type Display struct {
	Bill      string
	TipAmount string
	Total     string
	PerPerson string

	// TipLabel is the active percentage, e.g. "18%".
	TipLabel string

	// People is the party size with its noun, e.g. "1 person" or "3 people".
	People string

	// CanDecrement and CanIncrement mirror the enabled state of the stepper buttons.
	CanDecrement bool
	CanIncrement bool
}
