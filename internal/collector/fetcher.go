package collector

import (
	"errors"

	"TrendSentinel/internal/model"
)

// ErrNoData marks an empty market-data response.
var ErrNoData = errors.New("no market data returned")

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	Name() string
}
