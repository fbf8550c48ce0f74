package collector

import (
	"fmt"
	"time"

	"TrendSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(100, days), nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the lookback window of price history for one
// ticker and validates it into a BarSeries.
type Collector struct {
	Fetcher      Fetcher
	Ticker       string
	LookbackDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, ticker string, lookbackDays int) *Collector {
	return &Collector{Fetcher: fetcher, Ticker: ticker, LookbackDays: lookbackDays}
}

// Collect fetches the bar history. An empty response is a
// data-unavailable error carrying the ticker and attempted window.
func (c *Collector) Collect() (*model.BarSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(c.Ticker, c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s (%dd window): %w", c.Ticker, c.LookbackDays, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch %s (%dd window): %w", c.Ticker, c.LookbackDays, ErrNoData)
	}

	series := &model.BarSeries{
		Symbol:    c.Ticker,
		Bars:      bars,
		FetchedAt: time.Now(),
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s history: %w", c.Ticker, err)
	}
	return series, nil
}
