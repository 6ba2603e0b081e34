package geo

import (
	"math"
	"strings"
)

// GridSquare is a 6-character Maidenhead locator such as "DM33xa".
type GridSquare string

// Cell sizes in degrees.
const (
	fieldLonDeg     = 20.0
	fieldLatDeg     = 10.0
	squareLonDeg    = 2.0
	squareLatDeg    = 1.0
	subsquareLonDeg = squareLonDeg / 24.0
	subsquareLatDeg = squareLatDeg / 24.0
)

// justBelow keeps the lat=90 / lon=180 edges inside the last cell.
const justBelow = 1e-9

// Maidenhead encodes c as a 6-character locator: two uppercase field letters,
// two square digits and two lowercase subsquare letters.
func Maidenhead(c Coordinate) GridSquare {
	adjLon := clamp(c.Lon+180, 0, 360-justBelow)
	adjLat := clamp(c.Lat+90, 0, 180-justBelow)

	b := []byte{
		'A' + byte(math.Floor(adjLon/fieldLonDeg)),
		'A' + byte(math.Floor(adjLat/fieldLatDeg)),
		'0' + byte(math.Floor(math.Mod(adjLon, fieldLonDeg)/squareLonDeg)),
		'0' + byte(math.Floor(math.Mod(adjLat, fieldLatDeg))),
		'a' + byte(math.Floor(math.Mod(adjLon, squareLonDeg)*12)),
		'a' + byte(math.Floor(math.Mod(adjLat, squareLatDeg)*24)),
	}
	return GridSquare(b)
}

// GridCenter decodes a 4- or 6-character locator into the centre of its cell.
func GridCenter(grid string) (Coordinate, error) {
	g := strings.ToUpper(strings.TrimSpace(grid))
	if len(g) != 4 && len(g) != 6 {
		return Coordinate{}, &InvalidInputError{Field: "grid", Reason: "locator must be 4 or 6 characters"}
	}
	if g[0] < 'A' || g[0] > 'R' || g[1] < 'A' || g[1] > 'R' {
		return Coordinate{}, &InvalidInputError{Field: "grid", Reason: "field letters must be A-R"}
	}
	if g[2] < '0' || g[2] > '9' || g[3] < '0' || g[3] > '9' {
		return Coordinate{}, &InvalidInputError{Field: "grid", Reason: "square must be two digits"}
	}

	lon := float64(g[0]-'A')*fieldLonDeg + float64(g[2]-'0')*squareLonDeg
	lat := float64(g[1]-'A')*fieldLatDeg + float64(g[3]-'0')*squareLatDeg

	if len(g) == 6 {
		if g[4] < 'A' || g[4] > 'X' || g[5] < 'A' || g[5] > 'X' {
			return Coordinate{}, &InvalidInputError{Field: "grid", Reason: "subsquare letters must be a-x"}
		}
		lon += float64(g[4]-'A')*subsquareLonDeg + subsquareLonDeg/2
		lat += float64(g[5]-'A')*subsquareLatDeg + subsquareLatDeg/2
	} else {
		lon += squareLonDeg / 2
		lat += squareLatDeg / 2
	}

	return Coordinate{Lat: lat - 90, Lon: lon - 180}, nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
