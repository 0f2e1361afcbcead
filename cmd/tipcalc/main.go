package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/config"
	"github.com/mmynk/tipcalc/internal/models"
	"github.com/mmynk/tipcalc/internal/session"
	"github.com/mmynk/tipcalc/internal/tui"
	"github.com/mmynk/tipcalc/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tipcalc",
		Short:         "Split a bill with tip between friends",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive calculator",
			RunE:  runTUI,
		},
		newCalcCmd(),
	)
	return root
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen owns stderr, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logging.SetupWriter(w, cfg.Level())

	sess := session.New()
	sess.OnChange = func(st models.State, b models.Breakdown) {
		slog.Debug("State changed",
			"bill_amount", st.BillAmount,
			"tip", st.Tip.Kind,
			"tip_percent", st.Tip.EffectivePercent(),
			"people_count", st.PeopleCount,
			"total", b.Total,
		)
	}

	if _, err := tea.NewProgram(tui.NewModel(sess)).Run(); err != nil {
		return fmt.Errorf("failed to run calculator: %w", err)
	}
	return nil
}
