package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TrendSentinel/internal/model"
)

func trendBars(n int, step float64) []model.Bar {
	bars := make([]model.Bar, n)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		p := 100 + step*float64(i)
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   p - 0.5,
			High:   p + 1,
			Low:    p - 1,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars
}

func TestDMISeries_WarmupBoundaries(t *testing.T) {
	res, err := DMISeries(trendBars(40, 1), 14)
	assert.NoError(t, err)

	assert.True(t, math.IsNaN(res.PlusDI[13]))
	assert.False(t, math.IsNaN(res.PlusDI[14]))
	assert.False(t, math.IsNaN(res.MinusDI[14]))

	// ADX smooths DX over a second full window.
	assert.True(t, math.IsNaN(res.ADX[26]))
	assert.False(t, math.IsNaN(res.ADX[27]))
}

func TestDMISeries_UptrendFavorsPlusDI(t *testing.T) {
	res, err := DMISeries(trendBars(60, 2), 14)
	assert.NoError(t, err)

	last := len(res.PlusDI) - 1
	assert.Greater(t, res.PlusDI[last], res.MinusDI[last])
	assert.Greater(t, res.ADX[last], 25.0, "a steady trend should produce a strong ADX")
}

func TestDMISeries_DowntrendFavorsMinusDI(t *testing.T) {
	res, err := DMISeries(trendBars(60, -2), 14)
	assert.NoError(t, err)

	last := len(res.PlusDI) - 1
	assert.Greater(t, res.MinusDI[last], res.PlusDI[last])
}

func TestDMISeries_InsufficientData(t *testing.T) {
	res, err := DMISeries(trendBars(10, 1), 14)
	assert.NoError(t, err)
	for i := range res.PlusDI {
		assert.True(t, math.IsNaN(res.PlusDI[i]))
		assert.True(t, math.IsNaN(res.ADX[i]))
	}
}

func TestDMISeries_InvalidPeriod(t *testing.T) {
	_, err := DMISeries(trendBars(10, 1), 0)
	assert.Error(t, err)
}
