package normalize

import "time"

// Leg is one contiguous trip segment by a single mode, projected onto the
// canonical column set. Transit-only attributes (route, agency, stops) are
// pointers: they are absent on WALK, BICYCLE and CAR legs, and projection
// simply omits what the wire format did not carry.
type Leg struct {
	StartTime     time.Time `json:"startTime" csv:"startTime"`
	EndTime       time.Time `json:"endTime" csv:"endTime"`
	TimeZone      string    `json:"timeZone" csv:"timeZone"`
	Mode          string    `json:"mode" csv:"mode"`
	DepartureWait float64   `json:"departureWait" csv:"departureWait"`
	Duration      float64   `json:"duration" csv:"duration"`
	Distance      *float64  `json:"distance,omitempty" csv:"distance,omitempty"`
	RouteType     *int      `json:"routeType,omitempty" csv:"routeType,omitempty"`
	RouteID       *string   `json:"routeId,omitempty" csv:"routeId,omitempty"`
	RouteShort    *string   `json:"routeShortName,omitempty" csv:"routeShortName,omitempty"`
	RouteLong     *string   `json:"routeLongName,omitempty" csv:"routeLongName,omitempty"`
	Headsign      *string   `json:"headsign,omitempty" csv:"headsign,omitempty"`
	AgencyName    *string   `json:"agencyName,omitempty" csv:"agencyName,omitempty"`
	AgencyURL     *string   `json:"agencyUrl,omitempty" csv:"agencyUrl,omitempty"`
	AgencyID      *string   `json:"agencyId,omitempty" csv:"agencyId,omitempty"`
	FromName      *string   `json:"fromName,omitempty" csv:"fromName,omitempty"`
	FromLat       *float64  `json:"fromLat,omitempty" csv:"fromLat,omitempty"`
	FromLon       *float64  `json:"fromLon,omitempty" csv:"fromLon,omitempty"`
	ToName        *string   `json:"toName,omitempty" csv:"toName,omitempty"`
	ToLat         *float64  `json:"toLat,omitempty" csv:"toLat,omitempty"`
	ToLon         *float64  `json:"toLon,omitempty" csv:"toLon,omitempty"`
	FromStopID    *string   `json:"fromStopId,omitempty" csv:"fromStopId,omitempty"`
	FromStopCode  *string   `json:"fromStopCode,omitempty" csv:"fromStopCode,omitempty"`
	ToStopID      *string   `json:"toStopId,omitempty" csv:"toStopId,omitempty"`
	ToStopCode    *string   `json:"toStopCode,omitempty" csv:"toStopCode,omitempty"`
}

// projectLeg selects the canonical columns from a rewritten leg node.
// Absent fields stay nil, never an error.
func projectLeg(n *Node) Leg {
	var leg Leg
	if t, ok := n.Time("startTime"); ok {
		leg.StartTime = t
	}
	if t, ok := n.Time("endTime"); ok {
		leg.EndTime = t
	}
	if s, ok := n.String("timeZone"); ok {
		leg.TimeZone = s
	}
	if s, ok := n.String("mode"); ok {
		leg.Mode = s
	}
	if f, ok := n.Float("departureWait"); ok {
		leg.DepartureWait = f
	}
	if f, ok := n.Float("duration"); ok {
		leg.Duration = f
	}
	leg.Distance = floatField(n, "distance")
	leg.RouteType = intField(n, "routeType")
	leg.RouteID = stringField(n, "routeId")
	leg.RouteShort = stringField(n, "routeShortName")
	leg.RouteLong = stringField(n, "routeLongName")
	leg.Headsign = stringField(n, "headsign")
	leg.AgencyName = stringField(n, "agencyName")
	leg.AgencyURL = stringField(n, "agencyUrl")
	leg.AgencyID = stringField(n, "agencyId")
	leg.FromName = stringField(n, "fromName")
	leg.FromLat = floatField(n, "fromLat")
	leg.FromLon = floatField(n, "fromLon")
	leg.ToName = stringField(n, "toName")
	leg.ToLat = floatField(n, "toLat")
	leg.ToLon = floatField(n, "toLon")
	leg.FromStopID = stringField(n, "fromStopId")
	leg.FromStopCode = stringField(n, "fromStopCode")
	leg.ToStopID = stringField(n, "toStopId")
	leg.ToStopCode = stringField(n, "toStopCode")
	return leg
}

func stringField(n *Node, name string) *string {
	if v, ok := n.String(name); ok {
		return &v
	}
	return nil
}

func floatField(n *Node, name string) *float64 {
	if v, ok := n.Float(name); ok {
		return &v
	}
	return nil
}

func intField(n *Node, name string) *int {
	if v, ok := n.Float(name); ok {
		i := int(v)
		return &i
	}
	return nil
}
