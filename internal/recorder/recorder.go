package recorder

import "time"

// PredictionRecord holds one completed prediction run for history.
type PredictionRecord struct {
	Time       time.Time
	Ticker     string
	Label      string
	Direction  string
	Confidence float64
	Close      float64
	Dispatched bool
}

// SkipRecord holds a live run skipped by the session gate.
type SkipRecord struct {
	Time   time.Time
	Ticker string
	Reason string
}

// Recorder persists prediction history for later analysis.
type Recorder interface {
	RecordPrediction(rec *PredictionRecord) error
	RecordSkip(rec *SkipRecord) error
	Close() error
}
