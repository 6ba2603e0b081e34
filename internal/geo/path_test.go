package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	p := Path(Coordinate{0, 0}, Coordinate{0, 90}, Miles)

	assert.Equal(t, GridSquare("JJ00aa"), p.FromGrid)
	assert.Equal(t, GridSquare("NJ50aa"), p.ToGrid)
	assert.Equal(t, Miles, p.Unit)
	assert.InDelta(t, 6218.5, p.Distance, 0.1)
	assert.InDelta(t, 90, p.Bearing, 1e-9)
	assert.InDelta(t, 270, p.ReverseBearing, 1e-9)
}

func TestPath_DefaultsToKilometers(t *testing.T) {
	p := Path(Coordinate{0, 0}, Coordinate{90, 0}, "")
	assert.Equal(t, Kilometers, p.Unit)
	assert.InDelta(t, 10007.5, p.Distance, 0.1)
}

func TestPathFeature(t *testing.T) {
	data, err := PathFeature(Path(Coordinate{33, -112}, Coordinate{48.14666, 11.60833}, Kilometers))
	require.NoError(t, err)

	var got struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "Feature", got.Type)
	assert.Equal(t, "LineString", got.Geometry.Type)
	assert.Equal(t, [][]float64{{-112, 33}, {11.60833, 48.14666}}, got.Geometry.Coordinates)
	assert.Equal(t, "DM43aa", got.Properties["from_grid"])
	assert.Equal(t, "JN58td", got.Properties["to_grid"])
	assert.Equal(t, "km", got.Properties["unit"])
}

func TestPointFeature(t *testing.T) {
	data, err := PointFeature(Coordinate{Lat: 33, Lon: -112}, map[string]any{"grid": "DM43aa"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Point"`)
	assert.Contains(t, string(data), `[-112,33]`)
	assert.Contains(t, string(data), `"DM43aa"`)
}
