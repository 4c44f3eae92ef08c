package otp

import (
	"errors"
	"testing"
)

func TestValidateModesSingle(t *testing.T) {
	valid := []Mode{ModeWalk, ModeBicycle, ModeCar, ModeTransit, ModeBus, ModeRail, ModeTram, ModeSubway}
	for _, m := range valid {
		t.Run(string(m), func(t *testing.T) {
			got, err := ValidateModes([]Mode{m})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != string(m) {
				t.Errorf("expected %s unchanged, got %s", m, got)
			}
		})
	}
}

func TestValidateModesNormalizesCase(t *testing.T) {
	got, err := ValidateModes([]Mode{"bus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "BUS" {
		t.Errorf("expected BUS, got %s", got)
	}
}

func TestValidateModesTransitBicycle(t *testing.T) {
	for _, modes := range [][]Mode{
		{ModeTransit, ModeBicycle},
		{ModeBicycle, ModeTransit},
	} {
		got, err := ValidateModes(modes)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", modes, err)
		}
		if got != string(modes[0])+","+string(modes[1]) {
			t.Errorf("expected order-preserving join, got %s", got)
		}
	}
}

func TestValidateModesRejectsCombinations(t *testing.T) {
	tests := []struct {
		name  string
		modes []Mode
	}{
		{name: "empty", modes: nil},
		{name: "unknown token", modes: []Mode{"HOVERCRAFT"}},
		{name: "car with transit", modes: []Mode{ModeCar, ModeTransit}},
		{name: "walk with bus", modes: []Mode{ModeWalk, ModeBus}},
		{name: "bus with rail", modes: []Mode{ModeBus, ModeRail}},
		{name: "three modes", modes: []Mode{ModeTransit, ModeBicycle, ModeWalk}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateModes(tt.modes)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
		})
	}
}
