package propagation

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// HoursPerDay is the number of hourly entries a reliability table must carry.
const HoursPerDay = 24

// Reading is one frequency's predicted reliability for a single UTC hour.
type Reading struct {
	FrequencyMHz float64
	Reliability  float64 // fraction in [0, 1]
}

// Hour holds the readings for one UTC hour in source order.
type Hour []Reading

// Table is a 24-hour reliability prediction indexed by UTC hour.
type Table []Hour

// ParseTable decodes the prediction wire format, a JSON array of 24 objects
// mapping frequency strings to reliability fractions:
//
//	[{"7.05": 0.5, "14.1": 0.95}, ...]
//
// Key order within each hour is preserved.
func ParseTable(data []byte) (Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, invalid("table", "not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, invalid("table", "expected a JSON array of hourly entries")
	}

	entries := root.Array()
	if len(entries) != HoursPerDay {
		return nil, invalid("table", "expected %d hourly entries, got %d", HoursPerDay, len(entries))
	}

	t := make(Table, HoursPerDay)
	for h, entry := range entries {
		if !entry.IsObject() {
			return nil, invalid(hourField(h), "expected an object of frequency to reliability")
		}

		hour := Hour{}
		var perr error
		entry.ForEach(func(key, value gjson.Result) bool {
			freq, err := strconv.ParseFloat(key.String(), 64)
			if err != nil {
				perr = invalid(hourField(h), "frequency key %q is not numeric", key.String())
				return false
			}
			if value.Type != gjson.Number {
				perr = invalid(hourField(h), "reliability for %q is not a number", key.String())
				return false
			}
			hour = append(hour, Reading{FrequencyMHz: freq, Reliability: value.Float()})
			return true
		})
		if perr != nil {
			return nil, perr
		}
		t[h] = hour
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// UnmarshalJSON implements json.Unmarshaler using ParseTable.
func (t *Table) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTable(data)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Validate checks the table shape: exactly 24 hours, finite positive
// frequencies without duplicates per hour, and reliabilities within [0, 1].
func (t Table) Validate() error {
	if len(t) != HoursPerDay {
		return invalid("table", "expected %d hourly entries, got %d", HoursPerDay, len(t))
	}
	for h, hour := range t {
		seen := make(map[float64]bool, len(hour))
		for _, r := range hour {
			if math.IsNaN(r.FrequencyMHz) || math.IsInf(r.FrequencyMHz, 0) || r.FrequencyMHz <= 0 {
				return invalid(hourField(h), "frequency %v is not a positive finite number", r.FrequencyMHz)
			}
			if seen[r.FrequencyMHz] {
				return invalid(hourField(h), "frequency %v listed more than once", r.FrequencyMHz)
			}
			seen[r.FrequencyMHz] = true

			if math.IsNaN(r.Reliability) || r.Reliability < 0 || r.Reliability > 1 {
				return invalid(hourField(h), "reliability %v for %v MHz outside [0, 1]", r.Reliability, r.FrequencyMHz)
			}
		}
	}
	return nil
}

func hourField(h int) string {
	return "hour " + strconv.Itoa(h)
}
