package collector

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newChartServer(t *testing.T, body string) (*httptest.Server, *YahooFetcher) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return srv, f
}

func TestYahooFetcher_ParsesChart(t *testing.T) {
	body := `{"chart":{"result":[{
		"timestamp":[1700000000,1700086400],
		"indicators":{"quote":[{
			"open":[100,101],"high":[102,103],"low":[99,100],
			"close":[101,102],"volume":[1000,2000]
		}]}
	}]}}`
	_, f := newChartServer(t, body)

	bars, err := f.FetchDailyBars("TSLA", 250)
	if err != nil {
		t.Fatalf("FetchDailyBars: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("len = %d, want 2", len(bars))
	}
	if bars[0].Close != 101 || bars[1].Volume != 2000 {
		t.Errorf("bars parsed incorrectly: %+v", bars)
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars not ascending")
	}
}

func TestYahooFetcher_EmptyQuoteArray(t *testing.T) {
	// Timestamps present but no quote object at all.
	body := `{"chart":{"result":[{
		"timestamp":[1700000000],
		"indicators":{"quote":[]}
	}]}}`
	_, f := newChartServer(t, body)

	_, err := f.FetchDailyBars("TSLA", 250)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestYahooFetcher_ShortQuoteArrays(t *testing.T) {
	// Two timestamps but only one value per quote field.
	body := `{"chart":{"result":[{
		"timestamp":[1700000000,1700086400],
		"indicators":{"quote":[{
			"open":[100],"high":[102],"low":[99],"close":[101],"volume":[1000]
		}]}
	}]}}`
	_, f := newChartServer(t, body)

	if _, err := f.FetchDailyBars("TSLA", 250); err == nil {
		t.Fatal("expected error for quote arrays shorter than timestamps")
	}
}

func TestYahooFetcher_APIError(t *testing.T) {
	body := `{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found"}}}`
	_, f := newChartServer(t, body)

	if _, err := f.FetchDailyBars("NOPE", 250); err == nil {
		t.Fatal("expected error from chart API error payload")
	}
}
