package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tipcalc/pkg/api"
)

type recordedEvent struct {
	eventType string
	changed   bool
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *fakeRecorder) ObserveEvent(eventType string, changed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{eventType, changed})
}

// setupTestServer starts the service behind httptest and returns a client for it.
func setupTestServer(t *testing.T, recorder EventRecorder) *api.TipServiceClient {
	t.Helper()

	path, handler := api.NewTipServiceHandler(NewTipService(recorder))
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return api.NewTipServiceClient(http.DefaultClient, server.URL)
}

func ptr(s string) *string { return &s }

func TestCalculate(t *testing.T) {
	client := setupTestServer(t, nil)

	tests := []struct {
		name    string
		req     *api.CalculateRequest
		want    api.Display
		wantTip int
	}{
		{
			name: "preset tip split three ways",
			req:  &api.CalculateRequest{BillAmount: "45.50", TipPercent: 15, PeopleCount: 3},
			want: api.Display{
				Bill: "$45.50", TipAmount: "$6.83", Total: "$52.33", PerPerson: "$17.44",
				TipLabel: "15%", People: "3 people", CanDecrement: true, CanIncrement: true,
			},
			wantTip: 15,
		},
		{
			name: "custom tip single person",
			req:  &api.CalculateRequest{BillAmount: "100", CustomTip: ptr("10"), PeopleCount: 1},
			want: api.Display{
				Bill: "$100.00", TipAmount: "$10.00", Total: "$110.00", PerPerson: "$110.00",
				TipLabel: "10%", People: "1 person", CanDecrement: false, CanIncrement: true,
			},
			wantTip: 10,
		},
		{
			name: "empty bill four people",
			req:  &api.CalculateRequest{BillAmount: "", TipPercent: 20, PeopleCount: 4},
			want: api.Display{
				Bill: "$0.00", TipAmount: "$0.00", Total: "$0.00", PerPerson: "$0.00",
				TipLabel: "20%", People: "4 people", CanDecrement: true, CanIncrement: true,
			},
			wantTip: 20,
		},
		{
			name: "defaults and clamped party size",
			req:  &api.CalculateRequest{BillAmount: "$10.005", PeopleCount: 50},
			want: api.Display{
				Bill: "$10.00", TipAmount: "$1.80", Total: "$11.80", PerPerson: "$0.59",
				TipLabel: "18%", People: "20 people", CanDecrement: true, CanIncrement: false,
			},
			wantTip: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Calculate(context.Background(), connect.NewRequest(tt.req))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Msg.Display)
			assert.Equal(t, tt.wantTip, resp.Msg.TipPercent)
		})
	}
}

func TestCalculateInvalidArgument(t *testing.T) {
	client := setupTestServer(t, nil)

	tests := []struct {
		name string
		req  *api.CalculateRequest
	}{
		{name: "bill over maximum", req: &api.CalculateRequest{BillAmount: "100000"}},
		{name: "custom tip over 100", req: &api.CalculateRequest{BillAmount: "10", CustomTip: ptr("150")}},
		{name: "tip percent not a preset", req: &api.CalculateRequest{BillAmount: "10", TipPercent: 17}},
		{name: "negative people", req: &api.CalculateRequest{BillAmount: "10", PeopleCount: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Calculate(context.Background(), connect.NewRequest(tt.req))
			require.Error(t, err)
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
}

func TestReplay(t *testing.T) {
	recorder := &fakeRecorder{}
	client := setupTestServer(t, recorder)

	resp, err := client.Replay(context.Background(), connect.NewRequest(&api.ReplayRequest{
		Events: []api.Event{
			{Type: "bill", Text: "12.345"},
			{Type: "custom_tip", Text: "10"},
			{Type: "custom_tip", Text: "150"},
			{Type: "decrement"},
			{Type: "increment"},
		},
	}))
	require.NoError(t, err)

	msg := resp.Msg
	assert.Equal(t, "12.34", msg.BillAmount)
	assert.True(t, msg.CustomTipActive)
	assert.Equal(t, "10", msg.CustomTip)
	assert.Equal(t, 10, msg.TipPercent)
	assert.Equal(t, 2, msg.PeopleCount)
	assert.InDelta(t, 13.574, msg.Breakdown.Total, 1e-9)
	assert.Equal(t, "$6.79", msg.Display.PerPerson)

	assert.Equal(t, []recordedEvent{
		{"bill", true},
		{"custom_tip", true},
		{"custom_tip", false},
		{"decrement", false},
		{"increment", true},
	}, recorder.events)
}

func TestReplayReset(t *testing.T) {
	client := setupTestServer(t, nil)

	resp, err := client.Replay(context.Background(), connect.NewRequest(&api.ReplayRequest{
		Events: []api.Event{
			{Type: "bill", Text: "80"},
			{Type: "preset", Value: 25},
			{Type: "increment"},
			{Type: "reset"},
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, api.Result{
		BillAmount:  "",
		TipPercent:  18,
		PeopleCount: 1,
		Display: api.Display{
			Bill: "$0.00", TipAmount: "$0.00", Total: "$0.00", PerPerson: "$0.00",
			TipLabel: "18%", People: "1 person", CanDecrement: false, CanIncrement: true,
		},
	}, *resp.Msg)
}

func TestReplayUnknownEvent(t *testing.T) {
	client := setupTestServer(t, nil)

	_, err := client.Replay(context.Background(), connect.NewRequest(&api.ReplayRequest{
		Events: []api.Event{{Type: "bill", Text: "1"}, {Type: "undo"}},
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.Contains(t, err.Error(), "event 1")
}

func TestPlainHTTPJSON(t *testing.T) {
	path, handler := api.NewTipServiceHandler(NewTipService(nil))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Post(
		server.URL+api.TipServiceCalculateProcedure,
		"application/json",
		strings.NewReader(`{"bill_amount":"45.50","tip_percent":15,"people_count":3}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
