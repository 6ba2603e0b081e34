package geo

import (
	"math"

	"github.com/tidwall/gjson"
)

// IsValidLatLon reports whether a geolocation payload carries a usable
// position: a "position" object whose "lat" and "lon" are finite JSON numbers
// within [-90, 90] and [-180, 180]. Anything else, including malformed JSON,
// yields false.
func IsValidLatLon(payload []byte) bool {
	_, ok := ParsePosition(payload)
	return ok
}

// ParsePosition extracts the coordinate from a geolocation payload of the form
// {"position": {"lat": 33.1, "lon": -112.2}}.
func ParsePosition(payload []byte) (Coordinate, bool) {
	if !gjson.ValidBytes(payload) {
		return Coordinate{}, false
	}
	pos := gjson.GetBytes(payload, "position")
	if !pos.IsObject() {
		return Coordinate{}, false
	}

	lat, ok := finiteNumber(pos.Get("lat"))
	if !ok {
		return Coordinate{}, false
	}
	lon, ok := finiteNumber(pos.Get("lon"))
	if !ok {
		return Coordinate{}, false
	}

	c := Coordinate{Lat: lat, Lon: lon}
	if c.Validate() != nil {
		return Coordinate{}, false
	}
	return c, true
}

func finiteNumber(r gjson.Result) (float64, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}
	v := r.Float()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
