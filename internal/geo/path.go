package geo

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// PathInfo summarizes the great-circle path between two stations.
type PathInfo struct {
	From           Coordinate `json:"from" yaml:"from"`
	To             Coordinate `json:"to" yaml:"to"`
	FromGrid       GridSquare `json:"from_grid" yaml:"from_grid"`
	ToGrid         GridSquare `json:"to_grid" yaml:"to_grid"`
	Distance       float64    `json:"distance" yaml:"distance"`
	Unit           Unit       `json:"unit" yaml:"unit"`
	Bearing        float64    `json:"bearing" yaml:"bearing"`
	ReverseBearing float64    `json:"reverse_bearing" yaml:"reverse_bearing"`
}

// Path computes distance, both headings and both locators for from -> to.
func Path(from, to Coordinate, unit Unit) PathInfo {
	if unit != Miles {
		unit = Kilometers
	}
	return PathInfo{
		From:           from,
		To:             to,
		FromGrid:       Maidenhead(from),
		ToGrid:         Maidenhead(to),
		Distance:       HaversineDistance(from, to, unit),
		Unit:           unit,
		Bearing:        Bearing(from, to),
		ReverseBearing: Bearing(to, from),
	}
}

// PathFeature renders the path as a GeoJSON LineString feature for map overlays.
func PathFeature(p PathInfo) ([]byte, error) {
	line := geom.NewLineStringFlat(geom.XY, []float64{p.From.Lon, p.From.Lat, p.To.Lon, p.To.Lat}).SetSRID(4326)

	f := &geojson.Feature{
		Geometry: line,
		Properties: map[string]any{
			"from_grid":       string(p.FromGrid),
			"to_grid":         string(p.ToGrid),
			"distance":        p.Distance,
			"unit":            string(p.Unit),
			"bearing":         p.Bearing,
			"reverse_bearing": p.ReverseBearing,
		},
	}
	data, err := f.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "geo: encode path feature")
	}
	return data, nil
}

// PointFeature renders a single station marker as a GeoJSON Point feature.
func PointFeature(c Coordinate, props map[string]any) ([]byte, error) {
	f := &geojson.Feature{
		Geometry:   c.Point(),
		Properties: props,
	}
	data, err := f.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "geo: encode point feature")
	}
	return data, nil
}
