package normalize

import (
	"math"
	"time"
)

// ZonedFromEpochMillis converts a millisecond UNIX epoch timestamp to a
// zoned time. The instant is preserved exactly; deriving whole seconds from
// it truncates (integer division), it never rounds.
func ZonedFromEpochMillis(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc)
}

// ResolveLocation resolves an IANA timezone name, falling back to the
// process-local zone when the name is empty. The router graph's own zone is
// deliberately not consulted; the effective zone is always reported back to
// the caller in the timeZone field.
func ResolveLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

// MinutesFromSeconds converts a second-denominated duration to minutes
// rounded to 2 decimal places.
func MinutesFromSeconds(sec float64) float64 {
	return math.Round(sec/60*100) / 100
}

// MinutesFromMillis converts a millisecond-denominated duration to minutes
// rounded to 2 decimal places.
func MinutesFromMillis(ms float64) float64 {
	return MinutesFromSeconds(ms / 1000)
}
