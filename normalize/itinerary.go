package normalize

import (
	"encoding/json"
	"time"
)

// Labels for the itinerary column that the upstream API always calls
// walkTime, even when it measures drive or cycle time.
const (
	LabelWalkTime  = "walkTime"
	LabelDriveTime = "driveTime"
	LabelCycleTime = "cycleTime"
)

// WalkTimeLabelForMode returns the output name of the walkTime column.
// The upstream API mislabels the field for CAR and BICYCLE itineraries (it
// measures drive/cycle time); the column is renamed, the value kept.
func WalkTimeLabelForMode(mode string) string {
	switch mode {
	case "CAR":
		return LabelDriveTime
	case "BICYCLE":
		return LabelCycleTime
	}
	return LabelWalkTime
}

// Options controls one normalization run.
type Options struct {
	// Location is the zone every epoch field is converted into.
	Location *time.Location
	// MaxItineraries is clamped to the number actually present.
	MaxItineraries int
	// IncludeLegs runs the leg pipeline and attaches the leg records.
	IncludeLegs bool
	// WalkTimeLabel names the walkTime output column (see
	// WalkTimeLabelForMode).
	WalkTimeLabel string
}

// Itinerary is one planned trip option with durations in minutes and zoned
// timestamps. Duration approximately equals WalkTime + TransitTime +
// WaitingTime as reported upstream; the client does not enforce it.
type Itinerary struct {
	Start         time.Time `csv:"start"`
	End           time.Time `csv:"end"`
	TimeZone      string    `csv:"timeZone"`
	Duration      float64   `csv:"duration"`
	WalkTime      float64   `csv:"walkTime"`
	TransitTime   float64   `csv:"transitTime"`
	WaitingTime   float64   `csv:"waitingTime"`
	Transfers     int       `csv:"transfers"`
	WalkTimeLabel string    `csv:"-"`
	Legs          []Leg     `csv:"-"`
}

// MarshalJSON emits the walkTime value under its mode-dependent column
// name; everything else keeps its canonical name.
func (it Itinerary) MarshalJSON() ([]byte, error) {
	label := it.WalkTimeLabel
	if label == "" {
		label = LabelWalkTime
	}
	m := map[string]any{
		"start":       it.Start,
		"end":         it.End,
		"timeZone":    it.TimeZone,
		"duration":    it.Duration,
		label:         it.WalkTime,
		"transitTime": it.TransitTime,
		"waitingTime": it.WaitingTime,
		"transfers":   it.Transfers,
	}
	if it.Legs != nil {
		m["legs"] = it.Legs
	}
	return json.Marshal(m)
}

// Itineraries runs the pipeline over the raw decoded itinerary objects,
// keeping the first min(opts.MaxItineraries, len(raw)) in upstream order.
// The router's own ranking is preserved; no re-sorting.
func Itineraries(raw []map[string]any, opts Options) []Itinerary {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	n := opts.MaxItineraries
	if n > len(raw) || n <= 0 {
		n = len(raw)
	}
	ctx := &Context{Location: opts.Location}
	rules := Rules()
	if !opts.IncludeLegs {
		// The leg pipeline only runs when leg records were asked for.
		itOnly := rules[:0:0]
		for _, r := range rules {
			if r.Kind == KindItinerary {
				itOnly = append(itOnly, r)
			}
		}
		rules = itOnly
	}

	out := make([]Itinerary, 0, n)
	for _, m := range raw[:n] {
		tree := BuildItineraryTree(m)
		Walk(tree, ctx, rules)
		out = append(out, projectItinerary(tree, opts))
	}
	return out
}

// FirstDurationMinutes is the no-detail path: only the first itinerary's
// duration, in minutes rounded to 2 decimals. No timezone conversion or
// further processing happens here.
func FirstDurationMinutes(raw []map[string]any) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	sec, ok := raw[0]["duration"].(float64)
	if !ok {
		return 0, false
	}
	return MinutesFromSeconds(sec), true
}

func projectItinerary(n *Node, opts Options) Itinerary {
	it := Itinerary{WalkTimeLabel: opts.WalkTimeLabel}
	if t, ok := n.Time("startTime"); ok {
		it.Start = t
	}
	if t, ok := n.Time("endTime"); ok {
		it.End = t
	}
	if s, ok := n.String("timeZone"); ok {
		it.TimeZone = s
	}
	if f, ok := n.Float("duration"); ok {
		it.Duration = f
	}
	if f, ok := n.Float("walkTime"); ok {
		it.WalkTime = f
	}
	if f, ok := n.Float("transitTime"); ok {
		it.TransitTime = f
	}
	if f, ok := n.Float("waitingTime"); ok {
		it.WaitingTime = f
	}
	if f, ok := n.Float("transfers"); ok {
		it.Transfers = int(f)
	}
	if opts.IncludeLegs {
		if list := n.LegList(); list != nil {
			it.Legs = make([]Leg, 0, len(list.Children))
			for _, leg := range list.Children {
				it.Legs = append(it.Legs, projectLeg(leg))
			}
		}
	}
	return it
}
