package propagation

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Selection defaults.
const (
	DefaultMinReliabilityPct = 90
	DefaultFutureHours       = HoursPerDay
)

// Options controls band selection.
type Options struct {
	// MinReliabilityPct is the inclusive percentage a reading must reach.
	MinReliabilityPct int `json:"min_reliability_pct" yaml:"min_reliability_pct" mapstructure:"min_reliability_pct"`
	// FutureHours is how many hours after the reference hour to look ahead.
	FutureHours int `json:"future_hours" yaml:"future_hours" mapstructure:"future_hours"`
}

// DefaultOptions returns a 90% threshold with a full 24-hour look-ahead.
func DefaultOptions() Options {
	return Options{
		MinReliabilityPct: DefaultMinReliabilityPct,
		FutureHours:       DefaultFutureHours,
	}
}

// Validate rejects thresholds outside [0, 100] and look-aheads outside [0, 24].
func (o Options) Validate() error {
	if o.MinReliabilityPct < 0 || o.MinReliabilityPct > 100 {
		return invalid("min_reliability_pct", "%d outside [0, 100]", o.MinReliabilityPct)
	}
	if o.FutureHours < 0 || o.FutureHours > HoursPerDay {
		return invalid("future_hours", "%d outside [0, %d]", o.FutureHours, HoursPerDay)
	}
	return nil
}

// Recommendation is a usable frequency and its rounded reliability.
type Recommendation struct {
	Band           string  `json:"band" yaml:"band"`
	FrequencyMHz   float64 `json:"frequency_mhz" yaml:"frequency_mhz"`
	ReliabilityPct int     `json:"reliability_pct" yaml:"reliability_pct"`
}

// FutureRecommendation is a Recommendation for a specific upcoming UTC hour.
type FutureRecommendation struct {
	Recommendation `yaml:",inline"`
	Hour           int    `json:"hour" yaml:"hour"`
	Time           string `json:"time" yaml:"time"`
}

// Selection is the outcome of SelectBands.
type Selection struct {
	Now    []Recommendation       `json:"now" yaml:"now"`
	Future []FutureRecommendation `json:"future" yaml:"future"`
}

// halfEpsilon absorbs binary representation error so decimal halves such as
// 0.285 (28.499999... after scaling) still round up.
const halfEpsilon = 1e-9

// ReliabilityPct converts a reliability fraction to a whole percentage,
// rounding halves up.
func ReliabilityPct(fraction float64) int {
	return int(math.Floor(fraction*100 + 0.5 + halfEpsilon))
}

// HourLabel formats a UTC hour as "HH:00 UTC".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00 UTC", hour)
}

// SelectBands picks the readings meeting opts.MinReliabilityPct for the UTC
// hour containing ref (sorted by frequency) and for each of the following
// opts.FutureHours hours, wrapping from 23 to 0 (in table order per hour).
func SelectBands(t Table, ref time.Time, opts Options) (Selection, error) {
	if err := t.Validate(); err != nil {
		return Selection{}, err
	}
	if err := opts.Validate(); err != nil {
		return Selection{}, err
	}

	current := ref.UTC().Hour()

	sel := Selection{
		Now:    qualifying(t[current], opts.MinReliabilityPct),
		Future: []FutureRecommendation{},
	}
	slices.SortStableFunc(sel.Now, func(a, b Recommendation) int {
		switch {
		case a.FrequencyMHz < b.FrequencyMHz:
			return -1
		case a.FrequencyMHz > b.FrequencyMHz:
			return 1
		default:
			return 0
		}
	})

	for i := 1; i <= opts.FutureHours; i++ {
		h := (current + i) % HoursPerDay
		label := HourLabel(h)
		for _, rec := range qualifying(t[h], opts.MinReliabilityPct) {
			sel.Future = append(sel.Future, FutureRecommendation{Recommendation: rec, Hour: h, Time: label})
		}
	}

	return sel, nil
}

func qualifying(hour Hour, minPct int) []Recommendation {
	out := []Recommendation{}
	for _, r := range hour {
		pct := ReliabilityPct(r.Reliability)
		if pct < minPct {
			continue
		}
		out = append(out, Recommendation{
			Band:           FreqToBand(r.FrequencyMHz),
			FrequencyMHz:   r.FrequencyMHz,
			ReliabilityPct: pct,
		})
	}
	return out
}

// HourGroup collects the future recommendations for one UTC hour.
type HourGroup struct {
	Hour  int              `json:"hour" yaml:"hour"`
	Time  string           `json:"time" yaml:"time"`
	Bands []Recommendation `json:"bands" yaml:"bands"`
}

// GroupByHour groups consecutive future recommendations by hour, keeping the
// look-ahead order of SelectBands.
func GroupByHour(future []FutureRecommendation) []HourGroup {
	var groups []HourGroup
	for _, f := range future {
		if n := len(groups); n > 0 && groups[n-1].Hour == f.Hour {
			groups[n-1].Bands = append(groups[n-1].Bands, f.Recommendation)
			continue
		}
		groups = append(groups, HourGroup{Hour: f.Hour, Time: f.Time, Bands: []Recommendation{f.Recommendation}})
	}
	return groups
}
