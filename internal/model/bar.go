package model

import (
	"fmt"
	"math"
	"time"
)

// Bar represents a single OHLCV candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Validate checks that the bar carries usable price data.
func (b Bar) Validate() error {
	if b.Time.IsZero() {
		return fmt.Errorf("bar has zero timestamp")
	}
	for name, v := range map[string]float64{
		"open": b.Open, "high": b.High, "low": b.Low, "close": b.Close,
	} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bar %s: %s must be positive and finite, got %v", b.Time.Format("2006-01-02"), name, v)
		}
	}
	if b.Volume < 0 || math.IsNaN(b.Volume) {
		return fmt.Errorf("bar %s: volume must be non-negative, got %v", b.Time.Format("2006-01-02"), b.Volume)
	}
	return nil
}

// BarSeries is an ordered sequence of bars, ascending by timestamp.
// It is created fresh for each run and never mutated in place.
type BarSeries struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// Validate checks ordering, timestamp uniqueness and per-bar sanity.
func (s *BarSeries) Validate() error {
	for i, b := range s.Bars {
		if err := b.Validate(); err != nil {
			return err
		}
		if i > 0 && !s.Bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("bars out of order at index %d: %s !< %s",
				i, s.Bars[i-1].Time.Format(time.RFC3339), b.Time.Format(time.RFC3339))
		}
	}
	return nil
}

// Len returns the number of bars in the series.
func (s *BarSeries) Len() int { return len(s.Bars) }

// Closes extracts the close prices in bar order.
func (s *BarSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}
