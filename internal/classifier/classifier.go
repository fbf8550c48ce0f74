package classifier

import "errors"

// ErrModelNotFound marks a missing model artifact. It is distinct from
// a missing-feature error: both halt the run, but a missing artifact is
// detected at load time, before any fetch or prediction is attempted.
var ErrModelNotFound = errors.New("model artifact not found")

// Model is the narrow duck-typed contract of the trained classifier.
// The core never depends on the artifact's internal structure, only on
// these two operations over a schema-ordered feature vector.
type Model interface {
	// PredictLabel returns the predicted class label for one feature vector.
	PredictLabel(features []float64) (string, error)
	// PredictProba returns the probability distribution over all
	// classes, ordered to match Classes.
	PredictProba(features []float64) ([]float64, error)
	// Classes returns the class labels in probability-vector order.
	Classes() []string
}
