package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/theoremus-urban-solutions/otp-trip-client/normalize"
)

// ItinerariesICS writes one VEVENT per itinerary, spanning its zoned start
// and end, with a per-leg description when leg records are attached.
func ItinerariesICS(w io.Writer, its []normalize.Itinerary) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for i, it := range its {
		event := cal.AddEvent(fmt.Sprintf("%s-%d", it.Start.Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(it.Start)
		event.SetEndAt(it.End)
		event.SetSummary(itinerarySummary(it))
		if desc := legLines(it.Legs); desc != "" {
			event.SetDescription(desc)
		}
	}

	return cal.SerializeTo(w)
}

func itinerarySummary(it normalize.Itinerary) string {
	if len(it.Legs) > 0 {
		first, last := it.Legs[0], it.Legs[len(it.Legs)-1]
		if first.FromName != nil && last.ToName != nil {
			return fmt.Sprintf("Trip: %s to %s", *first.FromName, *last.ToName)
		}
	}
	return fmt.Sprintf("Trip (%.0f min)", it.Duration)
}

func legLines(legs []normalize.Leg) string {
	lines := make([]string, 0, len(legs))
	for _, l := range legs {
		line := fmt.Sprintf("%s %s: %.2f min", l.StartTime.Format("15:04"), l.Mode, l.Duration)
		if l.RouteShort != nil {
			line += " (" + *l.RouteShort + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
