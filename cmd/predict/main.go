package main

import (
	"flag"
	"log"
	"time"

	"TrendSentinel/internal/classifier"
	"TrendSentinel/internal/decision"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/pipeline"
)

// Batch mode: predict the next session's direction from a
// pre-computed feature CSV, without fetching or dispatching anything.
func main() {
	log.SetFlags(log.LstdFlags)

	file := flag.String("file", "data/TSLA_data_labeled.csv", "feature CSV to read")
	modelPath := flag.String("model", "data/tsla_model.json", "model artifact path")
	dateColumn := flag.String("date-column", "Date", "name of the date column in the CSV")
	ticker := flag.String("ticker", "TSLA", "ticker the CSV describes")
	flag.Parse()

	mdl, err := classifier.LoadLogistic(*modelPath, model.DefaultSchema)
	if err != nil {
		log.Fatalf("[FATAL] load model %s: %v", *modelPath, err)
	}

	table, err := pipeline.LoadCSV(*file, *dateColumn)
	if err != nil {
		log.Fatalf("[FATAL] load csv %s: %v", *file, err)
	}
	log.Printf("[INFO] loaded %d rows from %s", table.Len(), *file)

	row, err := table.DropIncomplete(model.DefaultSchema).SelectLatest(model.DefaultSchema)
	if err != nil {
		log.Fatalf("[FATAL] select latest feature row: %v", err)
	}

	result, err := classifier.Predict(mdl, row, model.DefaultSchema)
	if err != nil {
		log.Fatalf("[FATAL] predict: %v", err)
	}

	sig := decision.Decide(*ticker, time.Now(), result)
	log.Printf("[INFO] %s next session after %s: %s (label %s, confidence %.2f%%)",
		sig.Ticker, row.Date.Format("2006-01-02"), sig.Direction, result.Label, sig.Confidence)
}
