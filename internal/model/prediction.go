package model

import "time"

// PredictionResult is the raw classifier output: a class label plus the
// probability distribution over all classes, ordered to match Classes.
type PredictionResult struct {
	Label   string
	Classes []string
	Proba   []float64
}

// LabelProbability returns the probability mass assigned to the
// predicted label, or 0 if the label is not among the classes.
func (r *PredictionResult) LabelProbability() float64 {
	for i, c := range r.Classes {
		if c == r.Label && i < len(r.Proba) {
			return r.Proba[i]
		}
	}
	return 0
}

// Direction is the normalized two-valued signal direction. Whatever
// label encoding the model artifact uses ("1", "buy", ...) is mapped
// onto this enumeration immediately after inference.
type Direction string

const (
	DirectionUp         Direction = "up"
	DirectionDownOrFlat Direction = "down/flat"
)

// Signal is the final output of one prediction run.
type Signal struct {
	Ticker     string
	Time       time.Time
	Direction  Direction
	Confidence float64 // percentage of the predicted class, 0-100
	Dispatch   bool    // whether the signal is eligible for notification
}
