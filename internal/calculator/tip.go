package calculator

import (
	"strconv"

	"github.com/mmynk/tipcalc/internal/models"
)

const (
	// MaxBill is the largest bill amount the calculator accepts.
	MaxBill = 99999.99

	// MinTipPercent and MaxTipPercent bound a custom tip.
	MinTipPercent = 0
	MaxTipPercent = 100

	// DefaultTipPercent is the preset selected on a fresh screen.
	DefaultTipPercent = 18
)

// Presets are the fixed tip buttons, in display order.
var Presets = []int{15, 18, 20, 25}

// IsPreset reports whether percent is one of the preset buttons.
func IsPreset(percent int) bool {
	for _, p := range Presets {
		if p == percent {
			return true
		}
	}
	return false
}

// ParseAmount parses bill text. Empty or unparseable text yields 0.
func ParseAmount(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}

// Calculate computes the tip, total and per-person share.
//
//	tip_amount = bill × tip_percent / 100
//	total      = bill + tip_amount
//	per_person = total / people   (0 when people is not positive)
func Calculate(bill float64, tipPercent int, people int) models.Breakdown {
	tipAmount := bill * float64(tipPercent) / 100
	total := bill + tipAmount

	perPerson := 0.0
	if people > 0 {
		perPerson = total / float64(people)
	}

	return models.Breakdown{
		TipAmount: tipAmount,
		Total:     total,
		PerPerson: perPerson,
	}
}

// CalculateState derives the breakdown for a calculator state.
func CalculateState(state models.State) models.Breakdown {
	return Calculate(ParseAmount(state.BillAmount), state.Tip.EffectivePercent(), state.PeopleCount)
}
