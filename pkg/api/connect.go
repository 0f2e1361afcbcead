package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TipServiceName is the fully-qualified name of the service.
const TipServiceName = "tipcalc.v1.TipService"

// Procedure paths for each RPC.
const (
	TipServiceCalculateProcedure = "/tipcalc.v1.TipService/Calculate"
	TipServiceReplayProcedure    = "/tipcalc.v1.TipService/Replay"
)

// TipServiceHandler is implemented by the server side of the service.
type TipServiceHandler interface {
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[Result], error)
	Replay(context.Context, *connect.Request[ReplayRequest]) (*connect.Response[Result], error)
}

// NewTipServiceHandler builds an HTTP handler for svc and returns the path
// prefix it should be mounted on.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: codecNameJSON}),
		connect.WithCodec(jsonCodec{name: codecNameJSONCharsetUTF8}),
	}, opts...)

	calculate := connect.NewUnaryHandler(TipServiceCalculateProcedure, svc.Calculate, opts...)
	replay := connect.NewUnaryHandler(TipServiceReplayProcedure, svc.Replay, opts...)

	prefix := "/" + TipServiceName + "/"
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TipServiceCalculateProcedure:
			calculate.ServeHTTP(w, r)
		case TipServiceReplayProcedure:
			replay.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// TipServiceClient calls a remote TipService.
type TipServiceClient struct {
	calculate *connect.Client[CalculateRequest, Result]
	replay    *connect.Client[ReplayRequest, Result]
}

// NewTipServiceClient creates a client for the service at baseURL.
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: codecNameJSON})}, opts...)
	return &TipServiceClient{
		calculate: connect.NewClient[CalculateRequest, Result](httpClient, baseURL+TipServiceCalculateProcedure, opts...),
		replay:    connect.NewClient[ReplayRequest, Result](httpClient, baseURL+TipServiceReplayProcedure, opts...),
	}
}

// Calculate calls tipcalc.v1.TipService.Calculate.
func (c *TipServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[Result], error) {
	return c.calculate.CallUnary(ctx, req)
}

// Replay calls tipcalc.v1.TipService.Replay.
func (c *TipServiceClient) Replay(ctx context.Context, req *connect.Request[ReplayRequest]) (*connect.Response[Result], error) {
	return c.replay.CallUnary(ctx, req)
}
