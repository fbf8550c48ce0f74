package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TrendSentinel/internal/model"
)

func TestVWAPSeries_DailyBarsDegenerateToTypicalPrice(t *testing.T) {
	bars := trendBars(5, 1)
	out, err := VWAPSeries(bars, time.UTC)
	assert.NoError(t, err)
	for i, b := range bars {
		tp := (b.High + b.Low + b.Close) / 3
		assert.InDelta(t, tp, out[i], 1e-9, "bar %d", i)
	}
}

func TestVWAPSeries_CumulativeWithinDay(t *testing.T) {
	day := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)
	bars := []model.Bar{
		{Time: day, High: 12, Low: 8, Close: 10, Open: 10, Volume: 100},
		{Time: day.Add(time.Hour), High: 22, Low: 18, Close: 20, Open: 20, Volume: 300},
	}
	out, err := VWAPSeries(bars, time.UTC)
	assert.NoError(t, err)
	assert.InDelta(t, 10.0, out[0], 1e-9)
	// (10*100 + 20*300) / 400
	assert.InDelta(t, 17.5, out[1], 1e-9)
}

func TestVWAPSeries_ResetsAtDayBoundary(t *testing.T) {
	d1 := time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)
	bars := []model.Bar{
		{Time: d1, High: 12, Low: 8, Close: 10, Open: 10, Volume: 100},
		{Time: d2, High: 32, Low: 28, Close: 30, Open: 30, Volume: 100},
	}
	out, err := VWAPSeries(bars, time.UTC)
	assert.NoError(t, err)
	assert.InDelta(t, 10.0, out[0], 1e-9)
	assert.InDelta(t, 30.0, out[1], 1e-9, "new day should not carry the previous day's sums")
}

func TestVWAPSeries_ZeroVolumeIsNaN(t *testing.T) {
	bars := []model.Bar{
		{Time: time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC), High: 12, Low: 8, Close: 10, Open: 10, Volume: 0},
	}
	out, err := VWAPSeries(bars, time.UTC)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
}

func TestVWAPSeries_RequiresLocation(t *testing.T) {
	_, err := VWAPSeries(nil, nil)
	assert.Error(t, err)
}
