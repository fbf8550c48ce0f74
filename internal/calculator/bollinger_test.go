package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBollingerSeries(t *testing.T) {
	res, err := BollingerSeries([]float64{1, 2, 3, 4, 5}, 3, 2)
	assert.NoError(t, err)

	assert.True(t, math.IsNaN(res.Mid[1]))
	// Window {1,2,3}: mid 2, sample std 1.
	assert.InDelta(t, 2.0, res.Mid[2], 1e-9)
	assert.InDelta(t, 4.0, res.Upper[2], 1e-9)
	assert.InDelta(t, 0.0, res.Lower[2], 1e-9)
	assert.InDelta(t, 200.0, res.Width[2], 1e-9)
	assert.InDelta(t, 0.75, res.PercentB[2], 1e-9)
}

func TestBollingerSeries_ConstantCloses(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 50
	}
	res, err := BollingerSeries(closes, 20, 2)
	assert.NoError(t, err)

	last := len(closes) - 1
	assert.InDelta(t, 50.0, res.Mid[last], 1e-9)
	assert.InDelta(t, 50.0, res.Upper[last], 1e-9)
	assert.InDelta(t, 50.0, res.Lower[last], 1e-9)
	assert.InDelta(t, 0.0, res.Width[last], 1e-9)
	// Collapsed bands leave the close position undefined.
	assert.True(t, math.IsNaN(res.PercentB[last]))
}

func TestBollingerSeries_InvalidParams(t *testing.T) {
	_, err := BollingerSeries([]float64{1, 2, 3}, 1, 2)
	assert.Error(t, err)
	_, err = BollingerSeries([]float64{1, 2, 3}, 20, 0)
	assert.Error(t, err)
}
