package geo

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Unit selects the distance unit returned by HaversineDistance.
type Unit string

// Supported distance units.
const (
	Kilometers Unit = "km"
	Miles      Unit = "mi"
)

// Mean Earth radius per unit.
const (
	earthRadiusKM = 6371.0
	earthRadiusMI = 3958.8
)

// ParseUnit maps a user-supplied unit name to a Unit. Empty input means kilometers.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "km":
		return Kilometers, nil
	case "mi":
		return Miles, nil
	default:
		return "", eris.Errorf("geo: unknown distance unit %q (want km or mi)", s)
	}
}

// Radius returns the mean Earth radius expressed in u. Unknown units fall back to kilometers.
func (u Unit) Radius() float64 {
	if u == Miles {
		return earthRadiusMI
	}
	return earthRadiusKM
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// HaversineDistance returns the great-circle distance between a and b on a
// spherical Earth. Inputs are not range checked; validate them first.
func HaversineDistance(a, b Coordinate, unit Unit) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push h a hair past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return unit.Radius() * c
}

// Bearing returns the initial great-circle heading from one point to another,
// in degrees clockwise from true north, normalized into [0, 360).
//
// The heading between identical points is undefined; Bearing returns 0 for it.
func Bearing(from, to Coordinate) float64 {
	if from == to {
		return 0
	}

	lat1 := toRad(from.Lat)
	lat2 := toRad(to.Lat)
	dLon := toRad(to.Lon - from.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(toDeg(math.Atan2(y, x))+360, 360)
}
