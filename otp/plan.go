package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/otp-trip-client/normalize"
)

// PlanResult is the uniform envelope of a plan query. ErrorID is "OK", an
// upstream code verbatim, or a client-defined code; Query is always the
// submitted URL with percent-encoding undone for readability, on every
// outcome including failures.
type PlanResult struct {
	ErrorID      string                `json:"errorId"`
	Duration     *float64              `json:"duration,omitempty"`
	Itineraries  []normalize.Itinerary `json:"itineraries,omitempty"`
	ErrorMessage string                `json:"errorMessage,omitempty"`
	Advisories   []string              `json:"advisories,omitempty"`
	Query        string                `json:"query"`
}

// Err returns the result's error kind as a typed error, or nil when the
// result is OK. The envelope stays the primary contract; this is for
// callers that prefer errors.As over string comparison.
func (r *PlanResult) Err() error {
	switch r.ErrorID {
	case ErrorIDOK:
		return nil
	case ErrorIDInvalidRequest:
		msg := strings.TrimPrefix(r.ErrorMessage, "invalid request: ")
		return &ValidationError{Violations: strings.Split(msg, "; ")}
	case ErrorIDNoItinerary:
		return &NoItineraryError{}
	}
	return &UpstreamError{ID: r.ErrorID, Message: r.ErrorMessage}
}

// planResponse is the slice of the raw response tree this client reads.
type planResponse struct {
	Plan  *planBody `json:"plan"`
	Error *apiError `json:"error"`
}

type planBody struct {
	Itineraries []map[string]any `json:"itineraries"`
}

// apiError decodes both message field spellings; the connection's version
// tag picks which one to read (v1 uses msg, v2 uses message). The id is
// numeric on some routers and a string on others, so it stays raw.
type apiError struct {
	ID      json.RawMessage `json:"id"`
	Msg     string          `json:"msg"`
	Message string          `json:"message"`
}

// code is the upstream error code verbatim, unquoted when it came as a
// JSON string.
func (e *apiError) code() string {
	return strings.Trim(string(e.ID), `"`)
}

func (c *Connection) upstreamMessage(e *apiError) string {
	switch c.version {
	case V2:
		return e.Message
	default:
		return e.Msg
	}
}

// Plan submits one trip query. The three error kinds (validation, upstream,
// no itinerary) come back as data in the envelope with a nil Go error; a
// non-nil error means the transport failed or the response did not decode.
func (c *Connection) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	modeStr, violations := modeString(req.Modes)
	violations = append(violations, req.paramViolations()...)
	query := c.planQuery(req, modeStr)
	advisories := adviseUnchecked(req.Extra)

	if len(violations) > 0 {
		verr := &ValidationError{Violations: violations}
		return &PlanResult{
			ErrorID:      ErrorIDInvalidRequest,
			ErrorMessage: verr.Error(),
			Advisories:   advisories,
			Query:        decodeForDisplay(query),
		}, nil
	}

	body, status, err := c.doGet(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("plan request: %w", err)
	}
	var resp planResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if status != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d from %s", status, query)
		}
		return nil, fmt.Errorf("decode plan response: %w", err)
	}

	if resp.Error != nil {
		return &PlanResult{
			ErrorID:      resp.Error.code(),
			ErrorMessage: c.upstreamMessage(resp.Error),
			Advisories:   advisories,
			Query:        decodeForDisplay(query),
		}, nil
	}
	if resp.Plan == nil || len(resp.Plan.Itineraries) == 0 {
		return &PlanResult{
			ErrorID:      ErrorIDNoItinerary,
			ErrorMessage: noItineraryMessage,
			Advisories:   advisories,
			Query:        decodeForDisplay(query),
		}, nil
	}

	if !req.Detail {
		d, ok := normalize.FirstDurationMinutes(resp.Plan.Itineraries)
		if !ok {
			return nil, fmt.Errorf("decode plan response: first itinerary has no duration")
		}
		return &PlanResult{
			ErrorID:    ErrorIDOK,
			Duration:   &d,
			Advisories: advisories,
			Query:      decodeForDisplay(query),
		}, nil
	}

	its := normalize.Itineraries(resp.Plan.Itineraries, normalize.Options{
		Location:       c.loc,
		MaxItineraries: req.MaxItineraries,
		IncludeLegs:    req.IncludeLegs,
		WalkTimeLabel:  normalize.WalkTimeLabelForMode(modeStr),
	})
	return &PlanResult{
		ErrorID:     ErrorIDOK,
		Itineraries: its,
		Advisories:  advisories,
		Query:       decodeForDisplay(query),
	}, nil
}

// TripTime is the no-detail convenience call: only the first itinerary's
// total duration in minutes comes back, as the router ranked it.
func (c *Connection) TripTime(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	r := *req
	r.Detail = false
	r.IncludeLegs = false
	return c.Plan(ctx, &r)
}

// planQuery builds the encoded plan URL.
func (c *Connection) planQuery(req *PlanRequest, modeStr string) string {
	q := url.Values{}
	q.Set("fromPlace", req.From.String())
	q.Set("toPlace", req.To.String())
	q.Set("mode", modeStr)
	if req.Date != "" {
		q.Set("date", req.Date)
	}
	if req.Time != "" {
		q.Set("time", req.Time)
	}
	q.Set("arriveBy", strconv.FormatBool(req.ArriveBy))
	q.Set("maxWalkDistance", formatFloat(req.MaxWalkDistance))
	q.Set("walkReluctance", formatFloat(req.WalkReluctance))
	q.Set("waitReluctance", formatFloat(req.WaitReluctance))
	q.Set("transferPenalty", strconv.Itoa(req.TransferPenalty))
	q.Set("minTransferTime", strconv.Itoa(req.MinTransferTime))
	q.Set("numItineraries", strconv.Itoa(req.MaxItineraries))
	for k, v := range req.Extra {
		q.Set(k, v)
	}
	return c.RouterURL() + "/plan?" + q.Encode()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// decodeForDisplay undoes percent-encoding so the reported query reads
// like what was asked, not what went over the wire.
func decodeForDisplay(query string) string {
	decoded, err := url.QueryUnescape(query)
	if err != nil {
		return query
	}
	return decoded
}
