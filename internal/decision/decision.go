package decision

import (
	"strings"
	"time"

	"TrendSentinel/internal/model"
)

// NormalizeLabel maps whatever label encoding the model artifact uses
// onto the two-valued direction. Integer class 1 and the string
// spellings "buy"/"up" mean up; everything else is down-or-flat.
func NormalizeLabel(label string) model.Direction {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "1", "buy", "up":
		return model.DirectionUp
	}
	return model.DirectionDownOrFlat
}

// Decide maps a prediction result to the final signal. Confidence is
// always the probability mass on the predicted class, never the
// complement, regardless of which class was predicted. Only an up
// signal is dispatch-eligible.
func Decide(ticker string, at time.Time, result *model.PredictionResult) *model.Signal {
	direction := NormalizeLabel(result.Label)
	return &model.Signal{
		Ticker:     ticker,
		Time:       at,
		Direction:  direction,
		Confidence: result.LabelProbability() * 100,
		Dispatch:   direction == model.DirectionUp,
	}
}
