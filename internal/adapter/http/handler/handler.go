// Package handler implements the Gin HTTP surface for the identity vault,
// invoice engine, payment orchestrator and vendor payout engine.
package handler

import "time"

// timeLayout is the wire format used for every timestamp field in a
// response DTO.
const timeLayout = "2006-01-02T15:04:05Z07:00"

func durationMinutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
