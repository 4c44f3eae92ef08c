package normalize

import "math"

// legFieldNames maps flattened wire names to their canonical lower-camel
// form. Fields not listed keep their wire name.
var legFieldNames = map[string]string{
	"from.name":      "fromName",
	"from.lat":       "fromLat",
	"from.lon":       "fromLon",
	"from.stopId":    "fromStopId",
	"from.stopCode":  "fromStopCode",
	"from.arrival":   "fromArrival",
	"from.departure": "fromDeparture",
	"to.name":        "toName",
	"to.lat":         "toLat",
	"to.lon":         "toLon",
	"to.stopId":      "toStopId",
	"to.stopCode":    "toStopCode",
	"to.arrival":     "toArrival",
	"to.departure":   "toDeparture",
}

// legEpochFields are the leg fields carried as epoch milliseconds on the
// wire and converted to zoned times.
var legEpochFields = []string{"startTime", "endTime", "fromArrival", "fromDeparture"}

// itineraryEpochFields are the itinerary fields carried as epoch
// milliseconds on the wire.
var itineraryEpochFields = []string{"startTime", "endTime"}

// itineraryDurationFields are the itinerary fields reported in seconds and
// emitted in minutes.
var itineraryDurationFields = []string{"duration", "walkTime", "transitTime", "waitingTime"}

// Rules returns the full rewrite rule set for one normalization run.
func Rules() []Rule {
	return []Rule{
		{Name: "renameLegFields", Kind: KindLeg, Apply: renameLegFields},
		{Name: "convertLegEpochs", Kind: KindLeg, Apply: convertLegEpochs},
		{Name: "legDurationMinutes", Kind: KindLeg, Apply: legDurationMinutes},
		{Name: "attachLegTimeZone", Kind: KindLeg, Apply: attachLegTimeZone},
		{Name: "departureWait", Kind: KindLegList, Apply: departureWait},
		{Name: "convertItineraryEpochs", Kind: KindItinerary, Apply: convertItineraryEpochs},
		{Name: "itineraryDurationMinutes", Kind: KindItinerary, Apply: itineraryDurationMinutes},
		{Name: "attachItineraryTimeZone", Kind: KindItinerary, Apply: attachItineraryTimeZone},
	}
}

func renameLegFields(n *Node, _ *Context) {
	for _, c := range n.Children {
		if c.Kind != KindScalar {
			continue
		}
		if canonical, ok := legFieldNames[c.Name]; ok {
			c.Name = canonical
		}
	}
}

func convertLegEpochs(n *Node, ctx *Context) {
	convertEpochs(n, ctx, legEpochFields)
}

func convertItineraryEpochs(n *Node, ctx *Context) {
	convertEpochs(n, ctx, itineraryEpochFields)
}

func convertEpochs(n *Node, ctx *Context, fields []string) {
	for _, f := range fields {
		if ms, ok := n.Float(f); ok {
			n.SetScalar(f, ZonedFromEpochMillis(int64(ms), ctx.Location))
		}
	}
}

func legDurationMinutes(n *Node, _ *Context) {
	if sec, ok := n.Float("duration"); ok {
		n.SetScalar("duration", MinutesFromSeconds(sec))
	}
}

func itineraryDurationMinutes(n *Node, _ *Context) {
	for _, f := range itineraryDurationFields {
		if sec, ok := n.Float(f); ok {
			n.SetScalar(f, MinutesFromSeconds(sec))
		}
	}
}

func attachLegTimeZone(n *Node, ctx *Context) {
	if t, ok := n.Time("startTime"); ok {
		n.SetScalar("timeZone", t.Location().String())
		return
	}
	n.SetScalar("timeZone", ctx.Location.String())
}

func attachItineraryTimeZone(n *Node, ctx *Context) {
	if t, ok := n.Time("startTime"); ok {
		n.SetScalar("timeZone", t.Location().String())
		return
	}
	n.SetScalar("timeZone", ctx.Location.String())
}

// departureWait derives the minutes a traveller waits at a leg's origin
// between the previous leg's arrival there (fromArrival) and this leg's
// departure (fromDeparture). A single-leg itinerary has no wait by
// definition, and any leg where either side is missing coerces to 0.
// The absolute difference is kept deliberately: an upstream clock
// inconsistency must not surface as a negative wait.
func departureWait(n *Node, _ *Context) {
	single := len(n.Children) == 1
	for _, leg := range n.Children {
		if leg.Kind != KindLeg {
			continue
		}
		wait := 0.0
		if !single {
			arr, okA := leg.Time("fromArrival")
			dep, okD := leg.Time("fromDeparture")
			if okA && okD {
				wait = MinutesFromSeconds(math.Abs(dep.Sub(arr).Seconds()))
			}
		}
		leg.SetScalar("departureWait", wait)
	}
}
