package calculator

import (
	"errors"
	"math"
)

// BollingerResult holds the Bollinger band bundle.
type BollingerResult struct {
	Lower    []float64
	Mid      []float64
	Upper    []float64
	Width    []float64 // band width as a percentage of the midline
	PercentB []float64 // position of the close within the bands
}

// BollingerSeries computes Bollinger bands over a trailing window:
// mid = SMA(period), upper/lower = mid +/- stdDev sample standard
// deviations. Entries before index period-1 are NaN. PercentB is NaN
// whenever the bands collapse to zero width.
func BollingerSeries(closes []float64, period int, stdDev float64) (*BollingerResult, error) {
	if period <= 1 {
		return nil, errors.New("period must be greater than 1")
	}
	if stdDev <= 0 {
		return nil, errors.New("stdDev must be positive")
	}

	mid, err := SMASeries(closes, period)
	if err != nil {
		return nil, err
	}

	n := len(closes)
	res := &BollingerResult{
		Lower:    nanSeries(n),
		Mid:      mid,
		Upper:    nanSeries(n),
		Width:    nanSeries(n),
		PercentB: nanSeries(n),
	}

	for i := period - 1; i < n; i++ {
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mid[i]
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period-1))

		res.Upper[i] = mid[i] + stdDev*sd
		res.Lower[i] = mid[i] - stdDev*sd
		if mid[i] != 0 {
			res.Width[i] = (res.Upper[i] - res.Lower[i]) / mid[i] * 100
		}
		if band := res.Upper[i] - res.Lower[i]; band != 0 {
			res.PercentB[i] = (closes[i] - res.Lower[i]) / band
		}
	}
	return res, nil
}
