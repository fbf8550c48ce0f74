package calculator

import (
	"errors"
	"math"
	"time"

	"TrendSentinel/internal/model"
)

// VWAPSeries computes the volume-weighted average price of the typical
// price (H+L+C)/3, with the cumulative sums reset at each calendar day
// boundary in the given timezone. On daily bars each day is its own
// anchor group, so the value degenerates to the bar's typical price.
// Bars with no cumulative volume yet produce NaN.
func VWAPSeries(bars []model.Bar, loc *time.Location) ([]float64, error) {
	if loc == nil {
		return nil, errors.New("timezone is required for the daily anchor")
	}
	out := make([]float64, len(bars))
	var cumPV, cumV float64
	var day string
	for i, b := range bars {
		d := b.Time.In(loc).Format("2006-01-02")
		if d != day {
			day = d
			cumPV, cumV = 0, 0
		}
		tp := (b.High + b.Low + b.Close) / 3.0
		cumPV += tp * b.Volume
		cumV += b.Volume
		if cumV == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = cumPV / cumV
		}
	}
	return out, nil
}
