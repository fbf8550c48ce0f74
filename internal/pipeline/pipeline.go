package pipeline

import (
	"fmt"
	"math"
	"time"

	"TrendSentinel/internal/calculator"
	"TrendSentinel/internal/model"
)

// BBStdStrategy selects how the BB_std feature is derived from the
// Bollinger bundle. The two deployed variants of the training process
// disagree here, so the choice is configuration validated against the
// specific trained artifact, not a guess.
type BBStdStrategy string

const (
	// BBStdHalfBandGap derives BB_std as half the gap between the
	// upper band and the midline (i.e. one standard deviation).
	BBStdHalfBandGap BBStdStrategy = "half_band_gap"
	// BBStdBandWidthPercent substitutes the %B output directly.
	BBStdBandWidthPercent BBStdStrategy = "band_width_percent"
)

// ParseBBStdStrategy validates a configured strategy name.
func ParseBBStdStrategy(s string) (BBStdStrategy, error) {
	switch BBStdStrategy(s) {
	case BBStdHalfBandGap, BBStdBandWidthPercent:
		return BBStdStrategy(s), nil
	}
	return "", fmt.Errorf("unknown bb_std_strategy %q (want %s or %s)", s, BBStdHalfBandGap, BBStdBandWidthPercent)
}

// Indicator parameters. These are baked into the trained model's
// feature semantics and must stay byte-for-byte consistent with the
// training process.
const (
	rsiPeriod     = 14
	macdFast      = 12
	macdSlow      = 26
	macdSignal    = 9
	dmiPeriod     = 14
	maShortPeriod = 20
	maLongPeriod  = 50
	bbPeriod      = 20
	bbStdDev      = 2.0
)

// canonicalNames maps library-native indicator column names onto the
// schema's stable names. Validated against the schema by tests, not
// discovered at runtime.
var canonicalNames = map[string]string{
	"RSI_14":        "RSI",
	"MACD_12_26_9":  "MACD_line",
	"MACDh_12_26_9": "MACD_hist",
	"MACDs_12_26_9": "MACD_signal",
	"DMP_14":        "DMP",
	"DMN_14":        "DMN",
	"ADX_14":        "ADX",
	"VWAP_D":        "VWAP",
	"SMA_20":        "MA_short",
	"SMA_50":        "MA_long",
	"BBM_20_2.0":    "BB_mid",
	"BBL_20_2.0":    "BB_lower",
	"BBU_20_2.0":    "BB_upper",
	"BBB_20_2.0":    "BB_width",
}

// Pipeline computes the full indicator feature set over a bar series.
type Pipeline struct {
	loc   *time.Location
	bbStd BBStdStrategy
}

// New creates a pipeline. The location anchors the VWAP daily reset to
// the instrument's home-exchange calendar.
func New(loc *time.Location, bbStd BBStdStrategy) *Pipeline {
	return &Pipeline{loc: loc, bbStd: bbStd}
}

// Compute derives every indicator over the series and canonicalizes
// the column names. Pure: the same series always yields an identical
// table, and the input is never modified.
func (p *Pipeline) Compute(series *model.BarSeries) (*Table, error) {
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("validate bar series: %w", err)
	}

	n := series.Len()
	closes := series.Closes()
	dates := make([]time.Time, n)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	volume := make([]float64, n)
	for i, b := range series.Bars {
		dates[i] = b.Time
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		volume[i] = b.Volume
	}

	table := NewTable(dates)
	var err error
	for _, c := range []struct {
		name   string
		values []float64
	}{
		{"Close", closes}, {"High", high}, {"Low", low}, {"Open", open}, {"Volume", volume},
	} {
		if table, err = table.WithColumn(c.name, c.values); err != nil {
			return nil, err
		}
	}

	rsi, err := calculator.RSISeries(closes, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	macd, err := calculator.MACDSeries(closes, macdFast, macdSlow, macdSignal)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	dmi, err := calculator.DMISeries(series.Bars, dmiPeriod)
	if err != nil {
		return nil, fmt.Errorf("dmi: %w", err)
	}
	vwap, err := calculator.VWAPSeries(series.Bars, p.loc)
	if err != nil {
		return nil, fmt.Errorf("vwap: %w", err)
	}
	maShort, err := calculator.SMASeries(closes, maShortPeriod)
	if err != nil {
		return nil, fmt.Errorf("sma short: %w", err)
	}
	maLong, err := calculator.SMASeries(closes, maLongPeriod)
	if err != nil {
		return nil, fmt.Errorf("sma long: %w", err)
	}
	bb, err := calculator.BollingerSeries(closes, bbPeriod, bbStdDev)
	if err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}

	for _, c := range []struct {
		name   string
		values []float64
	}{
		{"RSI_14", rsi},
		{"MACD_12_26_9", macd.Line},
		{"MACDs_12_26_9", macd.Signal},
		{"MACDh_12_26_9", macd.Histogram},
		{"DMP_14", dmi.PlusDI},
		{"DMN_14", dmi.MinusDI},
		{"ADX_14", dmi.ADX},
		{"VWAP_D", vwap},
		{"SMA_20", maShort},
		{"SMA_50", maLong},
		{"BBL_20_2.0", bb.Lower},
		{"BBM_20_2.0", bb.Mid},
		{"BBU_20_2.0", bb.Upper},
		{"BBB_20_2.0", bb.Width},
	} {
		if table, err = table.WithColumn(c.name, c.values); err != nil {
			return nil, err
		}
	}

	table = table.Rename(canonicalNames)

	bbStd, err := p.bbStdColumn(bb)
	if err != nil {
		return nil, err
	}
	return table.WithColumn("BB_std", bbStd)
}

func (p *Pipeline) bbStdColumn(bb *calculator.BollingerResult) ([]float64, error) {
	switch p.bbStd {
	case BBStdHalfBandGap:
		out := make([]float64, len(bb.Upper))
		for i := range out {
			if math.IsNaN(bb.Upper[i]) || math.IsNaN(bb.Mid[i]) {
				out[i] = math.NaN()
			} else {
				out[i] = (bb.Upper[i] - bb.Mid[i]) / 2
			}
		}
		return out, nil
	case BBStdBandWidthPercent:
		return bb.PercentB, nil
	}
	return nil, fmt.Errorf("unknown bb_std_strategy %q", p.bbStd)
}
