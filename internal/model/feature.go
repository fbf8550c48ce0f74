package model

// Schema is the fixed ordered list of feature names the trained
// classifier expects. The order is part of the model contract: the
// classifier only sees a fixed-width numeric vector, so the names and
// their positions must never change without retraining the artifact.
type Schema []string

// DefaultSchema matches the feature list the bundled model was trained on.
var DefaultSchema = Schema{
	"Close", "High", "Low", "Open", "Volume", "RSI", "MACD_line",
	"MACD_signal", "MACD_hist", "DMP", "DMN", "ADX", "VWAP", "MA_short",
	"MA_long", "BB_mid", "BB_std", "BB_upper", "BB_lower", "BB_width",
}

// Contains reports whether the schema includes the given feature name.
func (s Schema) Contains(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}
