// Package normalize turns the nested itinerary JSON returned by an
// OpenTripPlanner router into flat, typed records: zoned timestamps,
// durations in minutes, derived wait fields, and a canonical column set
// that tolerates the attributes the wire format omits on non-transit legs.
//
// The pipeline is an explicit recursive walk over a small tagged node tree
// (itinerary, leg list, leg, scalar field); each rewrite step is a named
// rule matched on node kind and field name.
package normalize
