package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"TrendSentinel/internal/model"
)

// logisticArtifact is the serialized form of the trained binary
// classifier: a logistic regression exported as JSON weights.
type logisticArtifact struct {
	Name         string    `json:"name"`
	Features     []string  `json:"features"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Classes      []string  `json:"classes"`
}

// LogisticModel is a file-resident binary classifier. The artifact
// embeds the feature list it was trained on, which is checked against
// the runtime schema at load so a training/inference skew fails fast
// instead of silently corrupting predictions.
type LogisticModel struct {
	artifact logisticArtifact
}

// LoadLogistic reads and validates a model artifact.
func LoadLogistic(path string, schema model.Schema) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}

	var art logisticArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("corrupt model artifact %s: %w", path, err)
	}

	if len(art.Coefficients) != len(art.Features) {
		return nil, fmt.Errorf("model artifact %s: %d coefficients for %d features",
			path, len(art.Coefficients), len(art.Features))
	}
	if len(art.Classes) != 2 {
		return nil, fmt.Errorf("model artifact %s: want 2 classes, got %d", path, len(art.Classes))
	}
	if len(art.Features) != len(schema) {
		return nil, fmt.Errorf("model artifact %s was trained on %d features, schema has %d",
			path, len(art.Features), len(schema))
	}
	for i, name := range schema {
		if art.Features[i] == name {
			continue
		}
		if !schema.Contains(art.Features[i]) {
			return nil, fmt.Errorf("model artifact %s: unknown feature %q", path, art.Features[i])
		}
		return nil, fmt.Errorf("model artifact %s: feature %d is %q, schema expects %q",
			path, i, art.Features[i], name)
	}
	return &LogisticModel{artifact: art}, nil
}

// Classes returns the two class labels; the second is the positive class.
func (m *LogisticModel) Classes() []string {
	out := make([]string, len(m.artifact.Classes))
	copy(out, m.artifact.Classes)
	return out
}

// PredictProba returns [P(class0), P(class1)] for one feature vector.
func (m *LogisticModel) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(m.artifact.Coefficients) {
		return nil, fmt.Errorf("feature vector has %d values, model expects %d",
			len(features), len(m.artifact.Coefficients))
	}
	z := m.artifact.Intercept
	for i, w := range m.artifact.Coefficients {
		z += w * features[i]
	}
	p := 1.0 / (1.0 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

// PredictLabel returns the class with the highest probability.
func (m *LogisticModel) PredictLabel(features []float64) (string, error) {
	proba, err := m.PredictProba(features)
	if err != nil {
		return "", err
	}
	best := 0
	for i, p := range proba {
		if p > proba[best] {
			best = i
		}
	}
	return m.artifact.Classes[best], nil
}
