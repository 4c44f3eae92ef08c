package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// IsochroneRequest asks for the area reachable from a point within the
// given cutoffs. The GeoJSON body passes through untouched.
type IsochroneRequest struct {
	From      LatLon
	CutoffSec []int
	Modes     []Mode
	Extra     map[string]string
}

// IsochroneResult wraps the raw GeoJSON response.
type IsochroneResult struct {
	ErrorID      string          `json:"errorId"`
	Response     json.RawMessage `json:"response,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	Query        string          `json:"query"`
}

// Isochrone fetches a reachability polygon. Pass-through: no normalization
// is applied to the GeoJSON.
func (c *Connection) Isochrone(ctx context.Context, req *IsochroneRequest) (*IsochroneResult, error) {
	modeStr, violations := modeString(req.Modes)

	q := url.Values{}
	q.Set("fromPlace", req.From.String())
	q.Set("mode", modeStr)
	for _, cutoff := range req.CutoffSec {
		q.Add("cutoffSec", strconv.Itoa(cutoff))
	}
	for k, v := range req.Extra {
		q.Set(k, v)
	}
	query := c.RouterURL() + "/isochrone?" + q.Encode()

	if len(violations) > 0 {
		verr := &ValidationError{Violations: violations}
		return &IsochroneResult{
			ErrorID:      ErrorIDInvalidRequest,
			ErrorMessage: verr.Error(),
			Query:        decodeForDisplay(query),
		}, nil
	}

	body, err := c.doGetOK(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("isochrone request: %w", err)
	}
	return &IsochroneResult{
		ErrorID:  ErrorIDOK,
		Response: body,
		Query:    decodeForDisplay(query),
	}, nil
}
