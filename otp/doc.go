// Package otp is a client for the OpenTripPlanner REST API, versions 1
// and 2. It validates trip queries before submission, issues a single
// synchronous GET per call, and returns a uniform result envelope whose
// errorId is "OK" on success, the upstream error code verbatim on router
// errors, and client-defined codes for validation failures and empty
// itinerary lists. A Connection is immutable after Connect and safe for
// concurrent use; the client performs no caching and no retries.
package otp
