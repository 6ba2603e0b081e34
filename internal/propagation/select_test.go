package propagation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atHour(h int) time.Time {
	return time.Date(2025, 6, 15, h, 17, 42, 0, time.UTC)
}

func emptyTable() Table {
	return make(Table, HoursPerDay)
}

func TestSelectBands_Now(t *testing.T) {
	table := emptyTable()
	table[10] = Hour{
		{FrequencyMHz: 14.1, Reliability: 0.95},
		{FrequencyMHz: 7.05, Reliability: 0.5},
	}

	sel, err := SelectBands(table, atHour(10), Options{MinReliabilityPct: 90, FutureHours: 24})
	require.NoError(t, err)

	assert.Equal(t, []Recommendation{
		{Band: "20m", FrequencyMHz: 14.1, ReliabilityPct: 95},
	}, sel.Now)
}

func TestSelectBands_NowSortedByFrequency(t *testing.T) {
	table := emptyTable()
	table[3] = Hour{
		{FrequencyMHz: 28.5, Reliability: 0.99},
		{FrequencyMHz: 13.0, Reliability: 0.93},
		{FrequencyMHz: 3.6, Reliability: 0.9},
		{FrequencyMHz: 7.1, Reliability: 0.8949},
	}

	sel, err := SelectBands(table, atHour(3), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []Recommendation{
		{Band: "80m", FrequencyMHz: 3.6, ReliabilityPct: 90},
		{Band: "13 MHz", FrequencyMHz: 13.0, ReliabilityPct: 93},
		{Band: "10m", FrequencyMHz: 28.5, ReliabilityPct: 99},
	}, sel.Now)
}

func TestSelectBands_UsesUTCHour(t *testing.T) {
	table := emptyTable()
	table[10] = Hour{{FrequencyMHz: 14.1, Reliability: 0.95}}

	phoenix := time.FixedZone("MST", -7*60*60)
	ref := time.Date(2025, 6, 15, 3, 30, 0, 0, phoenix) // 10:30 UTC

	sel, err := SelectBands(table, ref, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sel.Now, 1)
	assert.Equal(t, 14.1, sel.Now[0].FrequencyMHz)
}

func TestSelectBands_ThresholdInclusive(t *testing.T) {
	table := emptyTable()
	table[0] = Hour{
		{FrequencyMHz: 21.2, Reliability: 0.90},
		{FrequencyMHz: 18.1, Reliability: 0.895},
		{FrequencyMHz: 24.9, Reliability: 0.894},
	}

	tests := []struct {
		threshold int
		expected  []float64
	}{
		{0, []float64{18.1, 21.2, 24.9}},
		{89, []float64{18.1, 21.2, 24.9}},
		{90, []float64{18.1, 21.2}},
		{91, nil},
		{100, nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("threshold %d", tt.threshold), func(t *testing.T) {
			sel, err := SelectBands(table, atHour(0), Options{MinReliabilityPct: tt.threshold, FutureHours: 0})
			require.NoError(t, err)

			var got []float64
			for _, r := range sel.Now {
				got = append(got, r.FrequencyMHz)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectBands_FutureWrapsAtMidnight(t *testing.T) {
	table := emptyTable()
	table[0] = Hour{{FrequencyMHz: 7.1, Reliability: 0.97}}
	table[1] = Hour{
		{FrequencyMHz: 14.2, Reliability: 0.92},
		{FrequencyMHz: 3.7, Reliability: 0.99},
	}
	table[23] = Hour{{FrequencyMHz: 28.4, Reliability: 0.96}}

	sel, err := SelectBands(table, atHour(23), Options{MinReliabilityPct: 90, FutureHours: 2})
	require.NoError(t, err)

	assert.Equal(t, []Recommendation{{Band: "10m", FrequencyMHz: 28.4, ReliabilityPct: 96}}, sel.Now)
	assert.Equal(t, []FutureRecommendation{
		{Recommendation: Recommendation{Band: "40m", FrequencyMHz: 7.1, ReliabilityPct: 97}, Hour: 0, Time: "00:00 UTC"},
		{Recommendation: Recommendation{Band: "20m", FrequencyMHz: 14.2, ReliabilityPct: 92}, Hour: 1, Time: "01:00 UTC"},
		{Recommendation: Recommendation{Band: "80m", FrequencyMHz: 3.7, ReliabilityPct: 99}, Hour: 1, Time: "01:00 UTC"},
	}, sel.Future)
}

func TestSelectBands_FullDayLookAhead(t *testing.T) {
	table := emptyTable()
	for h := range table {
		table[h] = Hour{{FrequencyMHz: 14.1, Reliability: 0.95}}
	}

	sel, err := SelectBands(table, atHour(10), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sel.Future, HoursPerDay)

	assert.Equal(t, 11, sel.Future[0].Hour)
	assert.Equal(t, "11:00 UTC", sel.Future[0].Time)
	assert.Equal(t, 23, sel.Future[12].Hour)
	assert.Equal(t, 0, sel.Future[13].Hour)
	assert.Equal(t, 10, sel.Future[23].Hour)
	assert.Equal(t, "10:00 UTC", sel.Future[23].Time)
}

func TestSelectBands_NoQualifyingReadings(t *testing.T) {
	table := emptyTable()
	table[5] = Hour{{FrequencyMHz: 14.1, Reliability: 0.2}}

	sel, err := SelectBands(table, atHour(5), DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, sel.Now)
	assert.Empty(t, sel.Now)
	assert.NotNil(t, sel.Future)
	assert.Empty(t, sel.Future)
}

func TestSelectBands_Idempotent(t *testing.T) {
	table := emptyTable()
	for h := range table {
		table[h] = Hour{
			{FrequencyMHz: 28.3, Reliability: float64(h) / 23},
			{FrequencyMHz: 7.1, Reliability: 1 - float64(h)/23},
		}
	}
	opts := Options{MinReliabilityPct: 50, FutureHours: 24}

	first, err := SelectBands(table, atHour(17), opts)
	require.NoError(t, err)
	second, err := SelectBands(table, atHour(17), opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelectBands_InvalidInput(t *testing.T) {
	valid := emptyTable()

	tests := []struct {
		name  string
		table Table
		opts  Options
	}{
		{"short table", make(Table, 23), DefaultOptions()},
		{"nil table", nil, DefaultOptions()},
		{"bad reliability", func() Table {
			tb := emptyTable()
			tb[2] = Hour{{FrequencyMHz: 14.1, Reliability: 2}}
			return tb
		}(), DefaultOptions()},
		{"negative threshold", valid, Options{MinReliabilityPct: -1, FutureHours: 24}},
		{"threshold above 100", valid, Options{MinReliabilityPct: 101, FutureHours: 24}},
		{"negative future hours", valid, Options{MinReliabilityPct: 90, FutureHours: -1}},
		{"future hours past a day", valid, Options{MinReliabilityPct: 90, FutureHours: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SelectBands(tt.table, atHour(0), tt.opts)
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))
		})
	}
}

func TestReliabilityPct(t *testing.T) {
	tests := []struct {
		fraction float64
		expected int
	}{
		{0, 0},
		{0.004, 0},
		{0.005, 1},
		{0.285, 29},
		{0.5, 50},
		{0.8949, 89},
		{0.895, 90},
		{0.9, 90},
		{0.95, 95},
		{1, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ReliabilityPct(tt.fraction), "fraction %v", tt.fraction)
	}
}

func TestGroupByHour(t *testing.T) {
	future := []FutureRecommendation{
		{Recommendation: Recommendation{Band: "10m", FrequencyMHz: 28.4, ReliabilityPct: 96}, Hour: 23, Time: "23:00 UTC"},
		{Recommendation: Recommendation{Band: "40m", FrequencyMHz: 7.1, ReliabilityPct: 97}, Hour: 0, Time: "00:00 UTC"},
		{Recommendation: Recommendation{Band: "20m", FrequencyMHz: 14.2, ReliabilityPct: 92}, Hour: 0, Time: "00:00 UTC"},
	}

	groups := GroupByHour(future)
	require.Len(t, groups, 2)
	assert.Equal(t, 23, groups[0].Hour)
	assert.Len(t, groups[0].Bands, 1)
	assert.Equal(t, "00:00 UTC", groups[1].Time)
	assert.Equal(t, []Recommendation{future[1].Recommendation, future[2].Recommendation}, groups[1].Bands)

	assert.Empty(t, GroupByHour(nil))
}
