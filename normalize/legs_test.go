package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoLegFixture is a walk leg followed by a bus leg whose origin arrival
// and departure are 120 seconds apart.
const twoLegFixture = `[{
	"duration": 2741,
	"startTime": 1609459200000,
	"endTime": 1609461941000,
	"walkTime": 475,
	"transitTime": 1860,
	"waitingTime": 406,
	"transfers": 1,
	"legs": [
		{
			"mode": "WALK",
			"startTime": 1609459200000,
			"endTime": 1609459675000,
			"duration": 475,
			"distance": 520.7,
			"from": {"name": "Origin", "lat": 53.478, "lon": -2.242, "departure": 1609459200000},
			"to": {"name": "Piccadilly Gardens", "stopId": "1:1800", "stopCode": "NWPGDA", "arrival": 1609459675000}
		},
		{
			"mode": "BUS",
			"startTime": 1609459795000,
			"endTime": 1609461655000,
			"duration": 1860,
			"distance": 8046.0,
			"routeType": 3,
			"routeId": "1:43",
			"routeShortName": "43",
			"routeLongName": "Manchester Airport - Piccadilly",
			"headsign": "Manchester Airport",
			"agencyName": "Stagecoach",
			"agencyUrl": "https://www.stagecoachbus.com",
			"agencyId": "1:SCMN",
			"from": {"name": "Piccadilly Gardens", "stopId": "1:1800", "stopCode": "NWPGDA", "arrival": 1609459675000, "departure": 1609459795000},
			"to": {"name": "Airport Station", "stopId": "1:9100", "arrival": 1609461655000}
		}
	]
}]`

func decodeItineraries(t *testing.T, s string) []map[string]any {
	t.Helper()
	var raw []map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func TestLegNormalization(t *testing.T) {
	raw := decodeItineraries(t, twoLegFixture)
	its := Itineraries(raw, Options{Location: time.UTC, MaxItineraries: 1, IncludeLegs: true})
	require.Len(t, its, 1)
	require.Len(t, its[0].Legs, 2)

	walk, bus := its[0].Legs[0], its[0].Legs[1]

	// first leg: no previous arrival at its origin, wait coerces to 0
	assert.Equal(t, 0.0, walk.DepartureWait)
	// second leg: 120 s between fromArrival and fromDeparture
	assert.Equal(t, 2.00, bus.DepartureWait)

	// durations in minutes, 2 decimals
	assert.Equal(t, 7.92, walk.Duration)
	assert.Equal(t, 31.00, bus.Duration)

	// effective zone recorded per leg
	assert.Equal(t, "UTC", walk.TimeZone)
	assert.Equal(t, "UTC", bus.TimeZone)

	// transit-only attributes absent on the walk leg, present on the bus leg
	assert.Nil(t, walk.RouteID)
	assert.Nil(t, walk.AgencyName)
	require.NotNil(t, bus.RouteID)
	assert.Equal(t, "1:43", *bus.RouteID)
	require.NotNil(t, bus.RouteShort)
	assert.Equal(t, "43", *bus.RouteShort)
	require.NotNil(t, bus.AgencyName)
	assert.Equal(t, "Stagecoach", *bus.AgencyName)
	require.NotNil(t, bus.RouteType)
	assert.Equal(t, 3, *bus.RouteType)

	// place fields renamed from the dotted wire form
	require.NotNil(t, walk.FromName)
	assert.Equal(t, "Origin", *walk.FromName)
	require.NotNil(t, bus.FromStopCode)
	assert.Equal(t, "NWPGDA", *bus.FromStopCode)
	require.NotNil(t, bus.ToStopID)
	assert.Equal(t, "1:9100", *bus.ToStopID)

	// zoned leg timestamps keep the wire instant
	assert.Equal(t, int64(1609459795000), bus.StartTime.UnixMilli())
}

func TestSingleLegWaitAlwaysZero(t *testing.T) {
	// fromArrival and fromDeparture are 600 s apart, but a single-leg
	// itinerary has no wait by definition.
	fixture := `[{
		"duration": 900,
		"startTime": 1609459200000,
		"endTime": 1609460100000,
		"legs": [{
			"mode": "WALK",
			"startTime": 1609459200000,
			"endTime": 1609460100000,
			"duration": 900,
			"from": {"name": "A", "arrival": 1609458600000, "departure": 1609459200000},
			"to": {"name": "B"}
		}]
	}]`
	its := Itineraries(decodeItineraries(t, fixture), Options{Location: time.UTC, MaxItineraries: 1, IncludeLegs: true})
	require.Len(t, its, 1)
	require.Len(t, its[0].Legs, 1)
	assert.Equal(t, 0.0, its[0].Legs[0].DepartureWait)
}

func TestWaitUsesAbsoluteDifference(t *testing.T) {
	// upstream clock inconsistency: arrival after departure still yields a
	// positive wait
	fixture := `[{
		"duration": 900,
		"startTime": 1609459200000,
		"endTime": 1609460100000,
		"legs": [
			{"mode": "WALK", "startTime": 1609459200000, "endTime": 1609459500000, "duration": 300,
			 "from": {"name": "A", "departure": 1609459200000}, "to": {"name": "B"}},
			{"mode": "BUS", "startTime": 1609459500000, "endTime": 1609460100000, "duration": 600,
			 "from": {"name": "B", "arrival": 1609459680000, "departure": 1609459500000}, "to": {"name": "C"}}
		]
	}]`
	its := Itineraries(decodeItineraries(t, fixture), Options{Location: time.UTC, MaxItineraries: 1, IncludeLegs: true})
	require.Len(t, its, 1)
	assert.Equal(t, 3.00, its[0].Legs[1].DepartureWait)
}
