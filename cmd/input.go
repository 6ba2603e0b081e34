package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/stationmap/internal/geo"
)

// readInput returns the contents of the file named by the first argument, or
// stdin when there is none or it is "-".
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, eris.Wrap(err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", args[0])
	}
	return data, nil
}

// parseLocation accepts either "lat,lon" in decimal degrees or a 4/6-character
// Maidenhead locator, which resolves to the centre of its cell.
func parseLocation(s string) (geo.Coordinate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return geo.Coordinate{}, eris.New("empty location")
	}

	lat, lon, found := strings.Cut(s, ",")
	if !found {
		c, err := geo.GridCenter(s)
		if err != nil {
			return geo.Coordinate{}, eris.Wrapf(err, "parse location %q", s)
		}
		return c, nil
	}

	latV, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return geo.Coordinate{}, eris.Wrapf(err, "parse latitude %q", lat)
	}
	lonV, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return geo.Coordinate{}, eris.Wrapf(err, "parse longitude %q", lon)
	}

	c := geo.Coordinate{Lat: latV, Lon: lonV}
	if err := c.Validate(); err != nil {
		return geo.Coordinate{}, eris.Wrapf(err, "location %q", s)
	}
	return c, nil
}

// locationOrStation parses s, falling back to the configured home station when empty.
func locationOrStation(s string) (geo.Coordinate, error) {
	if strings.TrimSpace(s) == "" {
		return cfg.Station.Coordinate(), nil
	}
	return parseLocation(s)
}
