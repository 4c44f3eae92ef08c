package otp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsochronePassThrough(t *testing.T) {
	geojson := `{"type": "FeatureCollection", "features": []}`
	var seen url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		_, _ = w.Write([]byte(geojson))
	}))
	t.Cleanup(srv.Close)
	conn := testConnection(t, srv, 1)

	res, err := conn.Isochrone(context.Background(), &IsochroneRequest{
		From:      LatLon{Lat: 53.478, Lon: -2.242},
		CutoffSec: []int{900, 1800},
		Modes:     []Mode{ModeWalk},
	})
	require.NoError(t, err)

	assert.Equal(t, ErrorIDOK, res.ErrorID)
	// the GeoJSON body is untouched
	assert.JSONEq(t, geojson, string(res.Response))
	assert.Equal(t, []string{"900", "1800"}, seen["cutoffSec"])
	assert.Equal(t, "WALK", seen.Get("mode"))
	assert.Contains(t, res.Query, "/otp/routers/default/isochrone")
}

func TestIsochroneInvalidMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may be issued for an invalid isochrone request")
	}))
	t.Cleanup(srv.Close)
	conn := testConnection(t, srv, 1)

	res, err := conn.Isochrone(context.Background(), &IsochroneRequest{
		From:  LatLon{Lat: 1, Lon: 2},
		Modes: []Mode{ModeCar, ModeBus},
	})
	require.NoError(t, err)
	assert.Equal(t, ErrorIDInvalidRequest, res.ErrorID)
	assert.NotEmpty(t, res.ErrorMessage)
}
