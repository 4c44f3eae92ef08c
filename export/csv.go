package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/theoremus-urban-solutions/otp-trip-client/normalize"
)

// LegsCSV writes one row per leg in canonical column order. Absent
// transit-only attributes come out as empty cells.
func LegsCSV(w io.Writer, legs []normalize.Leg) error {
	b, err := csvutil.Marshal(legs)
	if err != nil {
		return fmt.Errorf("marshal legs: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// ItinerariesCSV writes one row per itinerary. The walkTime header cell
// follows the mode-dependent rename (driveTime, cycleTime) when the
// records carry one.
func ItinerariesCSV(w io.Writer, its []normalize.Itinerary) error {
	b, err := csvutil.Marshal(its)
	if err != nil {
		return fmt.Errorf("marshal itineraries: %w", err)
	}
	if len(its) > 0 {
		label := its[0].WalkTimeLabel
		if label != "" && label != normalize.LabelWalkTime {
			b = renameHeaderCell(b, normalize.LabelWalkTime, label)
		}
	}
	_, err = w.Write(b)
	return err
}

// renameHeaderCell rewrites one cell of the header line only.
func renameHeaderCell(b []byte, from, to string) []byte {
	nl := bytes.IndexByte(b, '\n')
	if nl < 0 {
		nl = len(b)
	}
	header := bytes.Replace(b[:nl], []byte(from), []byte(to), 1)
	return append(header, b[nl:]...)
}
