package calculator

import (
	"errors"
	"math"
)

// MACDResult holds the three MACD output series.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACDSeries computes the moving average convergence/divergence of the
// closes: line = EMA(fast) - EMA(slow), signal = EMA(signalPeriod) of
// the line, histogram = line - signal. The line becomes defined at
// index slow-1, the signal and histogram signalPeriod-1 bars later.
func MACDSeries(closes []float64, fast, slow, signalPeriod int) (*MACDResult, error) {
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return nil, errors.New("all periods must be positive")
	}
	if fast >= slow {
		return nil, errors.New("fast period must be shorter than slow period")
	}

	emaFast, err := EMASeries(closes, fast)
	if err != nil {
		return nil, err
	}
	emaSlow, err := EMASeries(closes, slow)
	if err != nil {
		return nil, err
	}

	line := make([]float64, len(closes))
	for i := range closes {
		if math.IsNaN(emaFast[i]) || math.IsNaN(emaSlow[i]) {
			line[i] = math.NaN()
		} else {
			line[i] = emaFast[i] - emaSlow[i]
		}
	}

	signal := emaOver(line, signalPeriod)

	hist := make([]float64, len(closes))
	for i := range closes {
		if math.IsNaN(line[i]) || math.IsNaN(signal[i]) {
			hist[i] = math.NaN()
		} else {
			hist[i] = line[i] - signal[i]
		}
	}

	return &MACDResult{Line: line, Signal: signal, Histogram: hist}, nil
}
