package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPrediction(_ *PredictionRecord) error { return nil }
func (n *NoopRecorder) RecordSkip(_ *SkipRecord) error             { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
