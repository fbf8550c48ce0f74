package classifier

import (
	"fmt"

	"TrendSentinel/internal/model"
	"TrendSentinel/internal/pipeline"
)

// Predict projects the feature row onto exactly the schema's columns
// and order, then invokes the model's label and probability operations.
// A row lacking any schema feature fails here with the pipeline's
// MissingFeaturesError — the model is never invoked on an incomplete row.
func Predict(m Model, row *pipeline.Row, schema model.Schema) (*model.PredictionResult, error) {
	features, err := row.Vector(schema)
	if err != nil {
		return nil, err
	}

	label, err := m.PredictLabel(features)
	if err != nil {
		return nil, fmt.Errorf("predict label: %w", err)
	}
	proba, err := m.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("predict probabilities: %w", err)
	}

	classes := m.Classes()
	if len(proba) != len(classes) {
		return nil, fmt.Errorf("model returned %d probabilities for %d classes", len(proba), len(classes))
	}

	return &model.PredictionResult{
		Label:   label,
		Classes: classes,
		Proba:   proba,
	}, nil
}
