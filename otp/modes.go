package otp

import (
	"sort"
	"strings"
)

// Mode is one travel mode token of the router's mode parameter.
type Mode string

// Accepted single-mode tokens.
const (
	ModeWalk    Mode = "WALK"
	ModeBicycle Mode = "BICYCLE"
	ModeCar     Mode = "CAR"
	ModeTransit Mode = "TRANSIT"
	ModeBus     Mode = "BUS"
	ModeRail    Mode = "RAIL"
	ModeTram    Mode = "TRAM"
	ModeSubway  Mode = "SUBWAY"
)

var singleModes = map[Mode]bool{
	ModeWalk:    true,
	ModeBicycle: true,
	ModeCar:     true,
	ModeTransit: true,
	ModeBus:     true,
	ModeRail:    true,
	ModeTram:    true,
	ModeSubway:  true,
}

// ValidateModes normalizes a mode specification to the uppercase,
// comma-joined value the router expects. Accepted inputs are a single
// known token or the pair {TRANSIT, BICYCLE} in either order ("bike to
// transit"). WALK is never appended for transit modes here; the router
// documents that it adds WALK itself for BUS/RAIL/TRAM/SUBWAY/TRANSIT.
func ValidateModes(modes []Mode) (string, error) {
	s, violations := modeString(modes)
	if len(violations) > 0 {
		return s, &ValidationError{Violations: violations}
	}
	return s, nil
}

// modeString returns the joined mode value and any violations. The joined
// value is produced even for invalid input so that the submitted query can
// be reported back to the caller.
func modeString(modes []Mode) (string, []string) {
	up := make([]Mode, 0, len(modes))
	for _, m := range modes {
		up = append(up, Mode(strings.ToUpper(strings.TrimSpace(string(m)))))
	}
	joined := joinModes(up)

	switch len(up) {
	case 0:
		return joined, []string{"mode must contain at least one token"}
	case 1:
		if !singleModes[up[0]] {
			return joined, []string{"invalid mode " + string(up[0])}
		}
		return joined, nil
	case 2:
		if isTransitBicycle(up) {
			return joined, nil
		}
	}
	return joined, []string{"invalid mode combination " + joined +
		": the only accepted combination is TRANSIT,BICYCLE"}
}

func isTransitBicycle(modes []Mode) bool {
	sorted := append([]Mode(nil), modes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[0] == ModeBicycle && sorted[1] == ModeTransit
}

func joinModes(modes []Mode) string {
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}
