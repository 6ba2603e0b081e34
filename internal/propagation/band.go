// Package propagation turns hourly HF reliability predictions into
// current and upcoming amateur band recommendations.
package propagation

import "strconv"

// Band is an amateur allocation covering [LowMHz, HighMHz).
type Band struct {
	Name    string  `json:"name" yaml:"name"`
	LowMHz  float64 `json:"low_mhz" yaml:"low_mhz"`
	HighMHz float64 `json:"high_mhz" yaml:"high_mhz"`
}

// Contains reports whether freqMHz falls inside the band.
func (b Band) Contains(freqMHz float64) bool {
	return freqMHz >= b.LowMHz && freqMHz < b.HighMHz
}

var bandPlan = []Band{
	{Name: "80m", LowMHz: 3.5, HighMHz: 4.0},
	{Name: "60m", LowMHz: 5.3, HighMHz: 5.5},
	{Name: "40m", LowMHz: 7.0, HighMHz: 7.3},
	{Name: "30m", LowMHz: 10.1, HighMHz: 10.15},
	{Name: "20m", LowMHz: 14.0, HighMHz: 14.35},
	{Name: "17m", LowMHz: 18.068, HighMHz: 18.168},
	{Name: "15m", LowMHz: 21.0, HighMHz: 21.45},
	{Name: "12m", LowMHz: 24.89, HighMHz: 24.99},
	{Name: "10m", LowMHz: 28.0, HighMHz: 29.7},
}

// Bands returns a copy of the HF band plan in ascending frequency order.
func Bands() []Band {
	out := make([]Band, len(bandPlan))
	copy(out, bandPlan)
	return out
}

// FreqToBand returns the band name for freqMHz, or "<freq> MHz" when the
// frequency lies outside every allocation.
func FreqToBand(freqMHz float64) string {
	for _, b := range bandPlan {
		if b.Contains(freqMHz) {
			return b.Name
		}
	}
	return strconv.FormatFloat(freqMHz, 'f', -1, 64) + " MHz"
}
