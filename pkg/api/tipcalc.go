package api

// CalculateRequest carries raw inputs for a one-shot evaluation.
type CalculateRequest struct {
	// BillAmount is raw bill text; it is sanitized before use.
	BillAmount string `json:"bill_amount"`

	// TipPercent selects a preset (15, 18, 20, 25). Ignored when CustomTip is set.
	// Zero selects the default preset.
	TipPercent int `json:"tip_percent,omitempty"`

	// CustomTip is raw custom percentage text. When present the custom tip is active.
	CustomTip *string `json:"custom_tip,omitempty"`

	// PeopleCount is the party size; it is clamped into [1, 20].
	// Zero selects the default of one person.
	PeopleCount int `json:"people_count,omitempty"`
}

// Event is one UI action in a replay.
type Event struct {
	// Type is one of bill, preset, custom_tip, increment, decrement, reset.
	Type string `json:"type"`

	// Text is the raw field contents for bill and custom_tip events.
	Text string `json:"text,omitempty"`

	// Value is the percentage for preset events.
	Value int `json:"value,omitempty"`
}

// ReplayRequest applies Events in order to a fresh calculator.
type ReplayRequest struct {
	Events []Event `json:"events"`
}

// Breakdown holds the unrounded calculation outputs.
type Breakdown struct {
	TipAmount float64 `json:"tip_amount"`
	Total     float64 `json:"total"`
	PerPerson float64 `json:"per_person"`
}

// Display holds the formatted outputs.
type Display struct {
	Bill         string `json:"bill"`
	TipAmount    string `json:"tip_amount"`
	Total        string `json:"total"`
	PerPerson    string `json:"per_person"`
	TipLabel     string `json:"tip_label"`
	People       string `json:"people"`
	CanDecrement bool   `json:"can_decrement"`
	CanIncrement bool   `json:"can_increment"`
}

// Result is the calculator state after evaluation.
type Result struct {
	BillAmount      string    `json:"bill_amount"`
	TipPercent      int       `json:"tip_percent"`
	CustomTipActive bool      `json:"custom_tip_active"`
	CustomTip       string    `json:"custom_tip"`
	PeopleCount     int       `json:"people_count"`
	Breakdown       Breakdown `json:"breakdown"`
	Display         Display   `json:"display"`
}
