package calculator

import (
	"errors"
	"math"

	"TrendSentinel/internal/model"
)

// DMIResult holds the directional movement bundle: +DI, -DI and ADX.
type DMIResult struct {
	PlusDI  []float64
	MinusDI []float64
	ADX     []float64
}

// DMISeries computes Wilder's directional movement system over the
// bars. +DI/-DI become defined at index period, ADX at index 2*period-1
// (it smooths DX over a second full window).
func DMISeries(bars []model.Bar, period int) (*DMIResult, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	n := len(bars)
	res := &DMIResult{
		PlusDI:  nanSeries(n),
		MinusDI: nanSeries(n),
		ADX:     nanSeries(n),
	}
	if n < period+1 {
		return res, nil
	}

	// True range and raw directional movement, defined from index 1.
	tr := make([]float64, n)
	pdm := make([]float64, n)
	mdm := make([]float64, n)
	for i := 1; i < n; i++ {
		h, l := bars[i].High, bars[i].Low
		ph, pl, pc := bars[i-1].High, bars[i-1].Low, bars[i-1].Close
		tr[i] = math.Max(h-l, math.Max(math.Abs(h-pc), math.Abs(l-pc)))
		up := h - ph
		down := pl - l
		if up > down && up > 0 {
			pdm[i] = up
		}
		if down > up && down > 0 {
			mdm[i] = down
		}
	}

	// Wilder smoothing of TR and DM, seeded over the first window.
	var sTR, sPDM, sMDM float64
	for i := 1; i <= period; i++ {
		sTR += tr[i]
		sPDM += pdm[i]
		sMDM += mdm[i]
	}
	sTR /= float64(period)
	sPDM /= float64(period)
	sMDM /= float64(period)

	dx := nanSeries(n)
	setDI := func(i int) {
		if sTR == 0 {
			res.PlusDI[i], res.MinusDI[i] = 0, 0
		} else {
			res.PlusDI[i] = 100 * sPDM / sTR
			res.MinusDI[i] = 100 * sMDM / sTR
		}
		if sum := res.PlusDI[i] + res.MinusDI[i]; sum > 0 {
			dx[i] = 100 * math.Abs(res.PlusDI[i]-res.MinusDI[i]) / sum
		} else {
			dx[i] = 0
		}
	}
	setDI(period)

	for i := period + 1; i < n; i++ {
		sTR = (sTR*float64(period-1) + tr[i]) / float64(period)
		sPDM = (sPDM*float64(period-1) + pdm[i]) / float64(period)
		sMDM = (sMDM*float64(period-1) + mdm[i]) / float64(period)
		setDI(i)
	}

	// ADX: Wilder-smoothed DX, seeded over the second window.
	if n < 2*period {
		return res, nil
	}
	var adx float64
	for i := period; i < 2*period; i++ {
		adx += dx[i]
	}
	adx /= float64(period)
	res.ADX[2*period-1] = adx
	for i := 2 * period; i < n; i++ {
		adx = (adx*float64(period-1) + dx[i]) / float64(period)
		res.ADX[i] = adx
	}
	return res, nil
}

func nanSeries(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
