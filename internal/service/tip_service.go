package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tipcalc/internal/calculator"
	"github.com/mmynk/tipcalc/internal/session"
	"github.com/mmynk/tipcalc/pkg/api"
)

var (
	ErrBillTooLarge   = fmt.Errorf("bill amount must not exceed %.2f", calculator.MaxBill)
	ErrTipOutOfRange  = fmt.Errorf("custom tip must be between %d and %d", calculator.MinTipPercent, calculator.MaxTipPercent)
	ErrNotPreset      = fmt.Errorf("tip_percent must be one of %v", calculator.Presets)
	ErrNegativePeople = errors.New("people_count must not be negative")
)

// EventRecorder observes each event applied by the service.
type EventRecorder interface {
	ObserveEvent(eventType string, changed bool)
}

// TipService implements api.TipServiceHandler. It keeps no state between
// calls; each request evaluates a fresh session.
type TipService struct {
	recorder EventRecorder
}

var _ api.TipServiceHandler = (*TipService)(nil)

// NewTipService creates a TipService. recorder may be nil.
func NewTipService(recorder EventRecorder) *TipService {
	return &TipService{recorder: recorder}
}

// Calculate evaluates one set of inputs.
func (s *TipService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.Result], error) {
	events, err := eventsForRequest(req.Msg)
	if err != nil {
		slog.Warn("Calculate rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	sess := session.New()
	for _, ev := range events {
		s.apply(sess, ev)
	}

	slog.Debug("Calculate",
		"bill_amount", sess.State().BillAmount,
		"tip_percent", sess.State().Tip.EffectivePercent(),
		"people_count", sess.State().PeopleCount,
		"total", sess.Breakdown().Total,
	)
	return connect.NewResponse(toResult(sess)), nil
}

// Replay applies a sequence of UI events to a fresh session.
func (s *TipService) Replay(ctx context.Context, req *connect.Request[api.ReplayRequest]) (*connect.Response[api.Result], error) {
	sess := session.New()
	for i, ev := range req.Msg.Events {
		if _, err := s.apply(sess, session.Event{
			Type:  session.EventType(ev.Type),
			Text:  ev.Text,
			Value: ev.Value,
		}); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("event %d: %w", i, err))
		}
	}

	slog.Debug("Replay", "events", len(req.Msg.Events), "total", sess.Breakdown().Total)
	return connect.NewResponse(toResult(sess)), nil
}

func (s *TipService) apply(sess *session.Session, ev session.Event) (bool, error) {
	changed, err := sess.Apply(ev)
	if err != nil {
		return false, err
	}
	if s.recorder != nil {
		s.recorder.ObserveEvent(string(ev.Type), changed)
	}
	return changed, nil
}

// eventsForRequest translates one-shot inputs into the events a user would
// produce on the screen. Inputs the screen would silently drop are reported
// as errors here since the caller has no prior value to fall back to.
func eventsForRequest(msg *api.CalculateRequest) ([]session.Event, error) {
	if _, ok := calculator.NormalizeBill(msg.BillAmount); !ok {
		return nil, ErrBillTooLarge
	}
	events := []session.Event{{Type: session.EventBill, Text: msg.BillAmount}}

	switch {
	case msg.CustomTip != nil:
		if _, ok := calculator.NormalizeCustomTip(*msg.CustomTip); !ok {
			return nil, ErrTipOutOfRange
		}
		events = append(events, session.Event{Type: session.EventCustomTip, Text: *msg.CustomTip})
	case msg.TipPercent != 0:
		if !calculator.IsPreset(msg.TipPercent) {
			return nil, ErrNotPreset
		}
		events = append(events, session.Event{Type: session.EventPreset, Value: msg.TipPercent})
	}

	if msg.PeopleCount < 0 {
		return nil, ErrNegativePeople
	}
	for n := calculator.MinPeople; n < msg.PeopleCount && n < calculator.MaxPeople; n++ {
		events = append(events, session.Event{Type: session.EventIncrement})
	}
	return events, nil
}

func toResult(sess *session.Session) *api.Result {
	st := sess.State()
	b := sess.Breakdown()
	d := sess.Display()
	return &api.Result{
		BillAmount:      st.BillAmount,
		TipPercent:      st.Tip.EffectivePercent(),
		CustomTipActive: st.Tip.IsCustom(),
		CustomTip:       st.Tip.CustomText,
		PeopleCount:     st.PeopleCount,
		Breakdown: api.Breakdown{
			TipAmount: b.TipAmount,
			Total:     b.Total,
			PerPerson: b.PerPerson,
		},
		Display: api.Display{
			Bill:         d.Bill,
			TipAmount:    d.TipAmount,
			Total:        d.Total,
			PerPerson:    d.PerPerson,
			TipLabel:     d.TipLabel,
			People:       d.People,
			CanDecrement: d.CanDecrement,
			CanIncrement: d.CanIncrement,
		},
	}
}
