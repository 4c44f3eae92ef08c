// Package export emits normalized trip records at the edges analysts
// actually consume: CSV tables of itineraries and legs, and ICS calendar
// events for planned trips.
package export
