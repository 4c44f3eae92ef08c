package otp

import (
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/otp-trip-client/config"
)

func TestDefaultRequestIsValid(t *testing.T) {
	req := NewPlanRequest(LatLon{Lat: 53.478, Lon: -2.242}, LatLon{Lat: 53.365, Lon: -2.272})
	if v := req.paramViolations(); v != nil {
		t.Fatalf("default request should validate, got %v", v)
	}
}

func TestMaxItinerariesLowerBound(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		req := NewPlanRequest(LatLon{}, LatLon{})
		req.MaxItineraries = n
		v := req.paramViolations()
		if len(v) != 1 {
			t.Fatalf("maxItineraries=%d: expected 1 violation, got %v", n, v)
		}
		if !strings.Contains(v[0], "maxItineraries") {
			t.Errorf("violation should name the parameter, got %q", v[0])
		}
	}
}

func TestViolationsCollectAll(t *testing.T) {
	req := NewPlanRequest(LatLon{}, LatLon{})
	req.WalkReluctance = -1
	req.WaitReluctance = -2
	req.TransferPenalty = -300
	req.MaxItineraries = 0

	v := req.paramViolations()
	if len(v) != 4 {
		t.Fatalf("expected all 4 violations reported together, got %d: %v", len(v), v)
	}
	joined := strings.Join(v, "; ")
	for _, name := range []string{"walkReluctance", "waitReluctance", "transferPenalty", "maxItineraries"} {
		if !strings.Contains(joined, name) {
			t.Errorf("expected %s in %q", name, joined)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	req := NewPlanRequest(LatLon{}, LatLon{})
	req.ApplyDefaults(config.QueryDefaults{
		Mode:            "CAR",
		MaxWalkDistance: 1600,
		MaxItineraries:  5,
	})

	if len(req.Modes) != 1 || req.Modes[0] != ModeCar {
		t.Errorf("expected configured mode CAR, got %v", req.Modes)
	}
	if req.MaxWalkDistance != 1600 {
		t.Errorf("expected maxWalkDistance 1600, got %v", req.MaxWalkDistance)
	}
	if req.MaxItineraries != 5 {
		t.Errorf("expected maxItineraries 5, got %v", req.MaxItineraries)
	}
	// untouched zero-value defaults keep the library values
	if req.WalkReluctance != 2 {
		t.Errorf("expected walkReluctance 2, got %v", req.WalkReluctance)
	}
}

func TestLatLonString(t *testing.T) {
	p := LatLon{Lat: 53.478, Lon: -2.242}
	if got := p.String(); got != "53.478,-2.242" {
		t.Errorf("expected 53.478,-2.242, got %s", got)
	}
}
