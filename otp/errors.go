package otp

import (
	"fmt"
	"strings"
)

// Client-defined errorId values. Upstream error codes pass through
// verbatim and are not listed here.
const (
	// ErrorIDOK marks a successful result.
	ErrorIDOK = "OK"
	// ErrorIDInvalidRequest marks caller input rejected before any
	// network call.
	ErrorIDInvalidRequest = "INVALID_REQUEST"
	// ErrorIDNoItinerary is the sentinel for a successful response that
	// contains zero itinerary options.
	ErrorIDNoItinerary = "-9999"
)

// noItineraryMessage names the most common cause of an empty itinerary
// list: OTP 2 applies a restrictive default maxWalkDistance to non-walk
// modes.
const noItineraryMessage = "the router returned no itineraries; " +
	"if the router runs OTP 2 this is often caused by its restrictive " +
	"default maxWalkDistance for non-walk modes, try raising maxWalkDistance"

// ValidationError reports every violated constraint of a request at once,
// not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Violations, "; ")
}

// UpstreamError is an explicit error node in the router response. ID is
// the upstream code verbatim.
type UpstreamError struct {
	ID      string
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("router error %s: %s", e.ID, e.Message)
}

// NoItineraryError is a successful response with zero itinerary options.
// Terminal; never retried.
type NoItineraryError struct{}

func (e *NoItineraryError) Error() string { return noItineraryMessage }
