// Package api defines the wire types and Connect bindings of the
// tipcalc.v1.TipService RPC service.
//
// Messages are plain Go structs carried with a JSON codec, so clients can call
// the service with any HTTP client:
//
//	curl -H 'Content-Type: application/json' \
//	    -d '{"bill_amount":"45.50","tip_percent":15,"people_count":3}' \
//	    http://localhost:8080/tipcalc.v1.TipService/Calculate
package api
