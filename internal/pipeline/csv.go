package pipeline

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// dateLayouts tried in order when parsing the CSV date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// LoadCSV reads a pre-materialized feature table from a CSV file with a
// parseable date column and numeric feature columns. Used by the batch
// mode in place of a live fetch; empty cells load as NaN so the usual
// completeness filtering applies.
func LoadCSV(path, dateColumn string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feature file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read feature file %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("feature file %s has no data rows", path)
	}

	header := records[0]
	dateIdx := -1
	for i, name := range header {
		if name == dateColumn {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("feature file %s has no %q column", path, dateColumn)
	}

	rows := records[1:]
	dates := make([]time.Time, len(rows))
	cols := make([][]float64, len(header))
	for i := range header {
		if i != dateIdx {
			cols[i] = make([]float64, len(rows))
		}
	}

	for j, rec := range rows {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", j+2, len(rec), len(header))
		}
		d, err := parseDate(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", j+2, err)
		}
		dates[j] = d
		for i, cell := range rec {
			if i == dateIdx {
				continue
			}
			if cell == "" {
				cols[i][j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", j+2, header[i], err)
			}
			cols[i][j] = v
		}
	}

	table := NewTable(dates)
	for i, name := range header {
		if i == dateIdx {
			continue
		}
		if table, err = table.WithColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
