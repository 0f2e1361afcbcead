package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/session"
)

type calcOptions struct {
	bill   string
	tip    int
	custom string
	people int
}

func newCalcCmd() *cobra.Command {
	opts := calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the tip, total and per-person share",
		Example: `  tipcalc calc --bill 45.50 --tip 15 --people 3
  tipcalc calc --bill 100 --custom 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := evaluate(opts, cmd.Flags().Changed("custom"))
			if err != nil {
				return err
			}
			printDisplay(cmd.OutOrStdout(), sess.Display())
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.bill, "bill", "", "bill amount")
	cmd.Flags().IntVar(&opts.tip, "tip", calculator.DefaultTipPercent, "preset tip percentage (15, 18, 20, 25)")
	cmd.Flags().StringVar(&opts.custom, "custom", "", "custom tip percentage (0-100), overrides --tip")
	cmd.Flags().IntVar(&opts.people, "people", calculator.MinPeople, "number of people (1-20)")
	return cmd
}

// evaluate feeds the flags to a session the way a user would on screen,
// but reports inputs the screen would silently drop.
func evaluate(opts calcOptions, useCustom bool) (*session.Session, error) {
	sess := session.New()

	if _, ok := calculator.NormalizeBill(opts.bill); !ok {
		return nil, fmt.Errorf("bill amount must not exceed %.2f", calculator.MaxBill)
	}
	sess.SetBillText(opts.bill)

	if useCustom {
		if _, ok := calculator.NormalizeCustomTip(opts.custom); !ok {
			return nil, fmt.Errorf("custom tip must be between %d and %d", calculator.MinTipPercent, calculator.MaxTipPercent)
		}
		sess.SetCustomTipText(opts.custom)
	} else {
		if !calculator.IsPreset(opts.tip) {
			return nil, fmt.Errorf("tip must be one of %v", calculator.Presets)
		}
		sess.SelectPreset(opts.tip)
	}

	if opts.people < calculator.MinPeople || opts.people > calculator.MaxPeople {
		return nil, errors.New("people must be between 1 and 20")
	}
	for sess.State().PeopleCount < opts.people {
		sess.IncrementPeople()
	}
	return sess, nil
}

func printDisplay(w io.Writer, d models.Display) {
	fmt.Fprintf(w, "%-12s%s\n", "Bill", d.Bill)
	fmt.Fprintf(w, "%-12s%s\n", "Tip ("+d.TipLabel+")", d.TipAmount)
	fmt.Fprintf(w, "%-12s%s\n", "Total", d.Total)
	fmt.Fprintf(w, "%-12s%s (%s)\n", "Per Person", d.PerPerson, d.People)
}
