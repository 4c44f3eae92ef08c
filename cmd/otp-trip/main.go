package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/otp-trip-client/config"
	"github.com/theoremus-urban-solutions/otp-trip-client/export"
	"github.com/theoremus-urban-solutions/otp-trip-client/internal"
	"github.com/theoremus-urban-solutions/otp-trip-client/otp"
)

func main() {
	cfgPath := flag.String("config", "", "config file path (default: probe config.yml)")
	from := flag.String("from", "", "origin as lat,lon")
	to := flag.String("to", "", "destination as lat,lon")
	mode := flag.String("mode", "", "travel mode(s), comma-separated (overrides config)")
	date := flag.String("date", "", "trip date MM-DD-YYYY")
	tm := flag.String("time", "", "trip time HH:MM:SS")
	arriveBy := flag.Bool("arriveBy", false, "plan for arrival at -time instead of departure")
	maxItineraries := flag.Int("maxItineraries", 0, "itineraries to keep (overrides config)")
	detail := flag.Bool("detail", true, "full itinerary records instead of a bare duration")
	legs := flag.Bool("legs", false, "attach normalized leg records")
	format := flag.String("format", "json", "json|csv|ics")
	flag.Parse()

	internal.InitLogging()
	if err := config.LoadAppConfig(*cfgPath); err != nil {
		panic(err)
	}

	origin, err := parseLatLon(*from)
	if err != nil {
		panic(fmt.Errorf("-from: %w", err))
	}
	dest, err := parseLatLon(*to)
	if err != nil {
		panic(fmt.Errorf("-to: %w", err))
	}

	conn, err := otp.Connect(context.Background(), otp.OptionsFromConfig(config.Config.Router))
	if err != nil {
		panic(err)
	}

	req := otp.NewPlanRequest(origin, dest)
	req.ApplyDefaults(config.Config.Defaults)
	if *mode != "" {
		req.Modes = nil
		for _, m := range strings.Split(*mode, ",") {
			req.Modes = append(req.Modes, otp.Mode(strings.TrimSpace(m)))
		}
	}
	req.Date = *date
	req.Time = *tm
	req.ArriveBy = *arriveBy
	if *maxItineraries > 0 {
		req.MaxItineraries = *maxItineraries
	}
	req.Detail = *detail
	req.IncludeLegs = *legs

	res, err := conn.Plan(context.Background(), req)
	if err != nil {
		panic(err)
	}

	switch *format {
	case "json":
		buf, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	case "csv":
		if *legs {
			for _, it := range res.Itineraries {
				if err := export.LegsCSV(os.Stdout, it.Legs); err != nil {
					panic(err)
				}
			}
			return
		}
		if err := export.ItinerariesCSV(os.Stdout, res.Itineraries); err != nil {
			panic(err)
		}
	case "ics":
		if err := export.ItinerariesICS(os.Stdout, res.Itineraries); err != nil {
			panic(err)
		}
	default:
		panic("unknown format")
	}
}

func parseLatLon(s string) (otp.LatLon, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return otp.LatLon{}, fmt.Errorf("expected lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return otp.LatLon{}, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return otp.LatLon{}, err
	}
	return otp.LatLon{Lat: lat, Lon: lon}, nil
}
