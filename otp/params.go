package otp

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/otp-trip-client/config"
)

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64
	Lon float64
}

// String renders the pair in the "lat,lon" form the router expects.
func (p LatLon) String() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Lon, 'f', -1, 64)
}

// PlanRequest is one trip-planning query. It is constructed fresh per call
// and never mutated after the request has been sent. Extra carries
// open-ended pass-through parameters that bypass validation entirely; the
// caller assumes their correctness and each name is surfaced as a
// non-fatal advisory in the result.
type PlanRequest struct {
	From  LatLon
	To    LatLon
	Modes []Mode

	// Date is MM-DD-YYYY and Time is HH:MM:SS; empty means the router's
	// current date/time.
	Date string
	Time string
	// ArriveBy plans for arrival at Time instead of departure.
	ArriveBy bool

	MaxWalkDistance float64 `validate:"gte=0"`
	WalkReluctance  float64 `validate:"gte=0"`
	WaitReluctance  float64 `validate:"gte=0"`
	TransferPenalty int     `validate:"gte=0"`
	MinTransferTime int     `validate:"gte=0"`
	MaxItineraries  int     `validate:"gte=1"`

	// Detail returns full itinerary records; without it only the first
	// itinerary's duration in minutes comes back.
	Detail bool
	// IncludeLegs attaches normalized leg records to each itinerary;
	// only honored together with Detail.
	IncludeLegs bool

	Extra map[string]string
}

// NewPlanRequest returns a request with the documented defaults.
func NewPlanRequest(from, to LatLon) *PlanRequest {
	return &PlanRequest{
		From:            from,
		To:              to,
		Modes:           []Mode{ModeTransit},
		MaxWalkDistance: 800,
		WalkReluctance:  2,
		WaitReluctance:  1,
		MaxItineraries:  3,
	}
}

// ApplyDefaults seeds the request from configured query defaults. Zero
// values in the configuration leave the request untouched.
func (r *PlanRequest) ApplyDefaults(d config.QueryDefaults) {
	if d.Mode != "" {
		r.Modes = []Mode{Mode(d.Mode)}
	}
	if d.MaxWalkDistance > 0 {
		r.MaxWalkDistance = d.MaxWalkDistance
	}
	if d.WalkReluctance > 0 {
		r.WalkReluctance = d.WalkReluctance
	}
	if d.WaitReluctance > 0 {
		r.WaitReluctance = d.WaitReluctance
	}
	if d.TransferPenalty > 0 {
		r.TransferPenalty = d.TransferPenalty
	}
	if d.MinTransferTime > 0 {
		r.MinTransferTime = d.MinTransferTime
	}
	if d.MaxItineraries > 0 {
		r.MaxItineraries = d.MaxItineraries
	}
}

var planValidate = validator.New()

// paramNames maps struct fields to the query-parameter names reported in
// violation messages.
var paramNames = map[string]string{
	"MaxWalkDistance": "maxWalkDistance",
	"WalkReluctance":  "walkReluctance",
	"WaitReluctance":  "waitReluctance",
	"TransferPenalty": "transferPenalty",
	"MinTransferTime": "minTransferTime",
	"MaxItineraries":  "maxItineraries",
}

// paramViolations checks every numeric constraint and reports all
// violations, not just the first.
func (r *PlanRequest) paramViolations() []string {
	err := planValidate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := paramNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		msgs = append(msgs, fmt.Sprintf("%s must be >= %s (got %v)", name, fe.Param(), fe.Value()))
	}
	return msgs
}
