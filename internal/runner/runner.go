package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"TrendSentinel/internal/classifier"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/decision"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/notifier"
	"TrendSentinel/internal/pipeline"
	"TrendSentinel/internal/recorder"
	"TrendSentinel/internal/session"
)

// Runner wires one prediction run end to end:
// gate → fetch → pipeline → inference → decision → dispatch/record.
// Each run is independent and stateless; any stage failure
// short-circuits the rest.
type Runner struct {
	Gate      *session.Gate
	Collector *collector.Collector
	Pipeline  *pipeline.Pipeline
	Model     classifier.Model
	Schema    model.Schema
	Notifiers []notifier.Notifier
	Recorder  recorder.Recorder
}

// RunLive consults the session gate before anything else. A closed
// session is not an error: the run is skipped and the reason recorded.
func (r *Runner) RunLive(ctx context.Context, now time.Time) (*model.Signal, error) {
	open, reason := r.Gate.Check(now)
	if !open {
		log.Printf("[INFO] session closed (%s), skipping inference for %s", reason, r.Collector.Ticker)
		if err := r.Recorder.RecordSkip(&recorder.SkipRecord{
			Time: now, Ticker: r.Collector.Ticker, Reason: string(reason),
		}); err != nil {
			log.Printf("[ERROR] record skip: %v", err)
		}
		return nil, nil
	}
	return r.Run(ctx, now)
}

// Run executes the pipeline unconditionally (manual trigger and batch
// paths bypass the gate).
func (r *Runner) Run(ctx context.Context, now time.Time) (*model.Signal, error) {
	series, err := r.Collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	log.Printf("[INFO] fetched %d bars for %s", series.Len(), series.Symbol)

	table, err := r.Pipeline.Compute(series)
	if err != nil {
		return nil, fmt.Errorf("compute features: %w", err)
	}
	row, err := table.DropIncomplete(r.Schema).SelectLatest(r.Schema)
	if err != nil {
		return nil, fmt.Errorf("select features: %w", err)
	}
	log.Printf("[INFO] latest feature row dated %s", row.Date.Format("2006-01-02"))

	result, err := classifier.Predict(r.Model, row, r.Schema)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	sig := decision.Decide(r.Collector.Ticker, now, result)
	log.Printf("[INFO] %s next session: %s (confidence %.2f%%)", sig.Ticker, sig.Direction, sig.Confidence)

	if sig.Dispatch {
		r.dispatch(ctx, sig)
	}

	if err := r.Recorder.RecordPrediction(&recorder.PredictionRecord{
		Time:       now,
		Ticker:     sig.Ticker,
		Label:      result.Label,
		Direction:  string(sig.Direction),
		Confidence: sig.Confidence,
		Close:      row.Values["Close"],
		Dispatched: sig.Dispatch,
	}); err != nil {
		log.Printf("[ERROR] record prediction: %v", err)
	}

	return sig, nil
}

// dispatch delivers the signal to every notifier. Transport failures
// are logged and swallowed: the prediction result stays valid.
func (r *Runner) dispatch(ctx context.Context, sig *model.Signal) {
	for _, n := range r.Notifiers {
		if err := n.Notify(ctx, sig); err != nil {
			log.Printf("[WARN] dispatch via %s failed: %v", n.Name(), err)
		} else {
			log.Printf("[INFO] signal dispatched via %s", n.Name())
		}
	}
}
