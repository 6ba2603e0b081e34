// Package geo provides great-circle and Maidenhead locator math for station positions.
package geo

import (
	"errors"
	"math"

	"github.com/twpayne/go-geom"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Validate returns an error when either component is non-finite or out of range.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return &InvalidInputError{Field: "lat", Reason: "not a finite number"}
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return &InvalidInputError{Field: "lon", Reason: "not a finite number"}
	}
	if c.Lat < -90 || c.Lat > 90 {
		return &InvalidInputError{Field: "lat", Reason: "must be within [-90, 90]"}
	}
	if c.Lon < -180 || c.Lon > 180 {
		return &InvalidInputError{Field: "lon", Reason: "must be within [-180, 180]"}
	}
	return nil
}

// Point returns the coordinate as an SRID 4326 point in lon/lat order.
func (c Coordinate) Point() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Lon, c.Lat}).SetSRID(4326)
}

// InvalidInputError reports a coordinate or locator that cannot be used.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "geo: invalid " + e.Field + ": " + e.Reason
}

// IsInvalidInput reports whether err (or anything it wraps) is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
