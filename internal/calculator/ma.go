package calculator

import (
	"errors"
	"math"
)

// SMASeries computes the simple moving average over a trailing window.
// The first period-1 entries are NaN while the window warms up.
func SMASeries(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i < period-1 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// EMASeries computes the exponential moving average, seeded with the
// SMA of the first period values. Entries before index period-1 are NaN.
func EMASeries(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(values))
	alpha := 2.0 / float64(period+1)
	sum := 0.0
	for i, v := range values {
		if i < period-1 {
			sum += v
			out[i] = math.NaN()
			continue
		}
		if i == period-1 {
			sum += v
			out[i] = sum / float64(period)
			continue
		}
		out[i] = (v-out[i-1])*alpha + out[i-1]
	}
	return out, nil
}

// emaOver applies an EMA to a series whose leading entries may be NaN,
// starting the seed window at the first defined value.
func emaOver(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	start := -1
	for i, v := range values {
		if !math.IsNaN(v) {
			start = i
			break
		}
	}
	if start < 0 || len(values)-start < period {
		return out
	}
	sub, err := EMASeries(values[start:], period)
	if err != nil {
		return out
	}
	copy(out[start:], sub)
	return out
}
