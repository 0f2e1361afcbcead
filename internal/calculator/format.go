package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tipcalc/internal/models"
)

// FormatCurrency renders amount with a "$" prefix and two decimals, rounding
// half-up on the shortest decimal form of the float, so 6.825 shows as "$6.83".
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatBill renders the bill text as currency. Empty text shows as "$0.00".
func FormatBill(text string) string {
	return FormatCurrency(ParseAmount(text))
}

// PeopleLabel returns "1 person" or "N people".
func PeopleLabel(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", n)
}

// Render formats a state and its breakdown for display.
func Render(state models.State, b models.Breakdown) models.Display {
	return models.Display{
		Bill:         FormatBill(state.BillAmount),
		TipAmount:    FormatCurrency(b.TipAmount),
		Total:        FormatCurrency(b.Total),
		PerPerson:    FormatCurrency(b.PerPerson),
		TipLabel:     fmt.Sprintf("%d%%", state.Tip.EffectivePercent()),
		People:       PeopleLabel(state.PeopleCount),
		CanDecrement: CanDecrement(state.PeopleCount),
		CanIncrement: CanIncrement(state.PeopleCount),
	}
}
