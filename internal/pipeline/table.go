package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"TrendSentinel/internal/model"
)

// Table is a row-per-bar, column-per-feature structure. Transformations
// return new tables instead of mutating in place, so the raw and
// canonical views can never alias each other.
type Table struct {
	dates []time.Time
	names []string
	cols  map[string][]float64
}

// Row is a single feature snapshot selected for inference.
type Row struct {
	Date   time.Time
	Values map[string]float64
}

// MissingFeaturesError reports schema names absent from a table, so a
// training/inference skew is diagnosable by exact feature name.
type MissingFeaturesError struct {
	Missing []string
}

func (e *MissingFeaturesError) Error() string {
	return fmt.Sprintf("feature table is missing required features: %s", strings.Join(e.Missing, ", "))
}

// NewTable creates an empty table over the given row timestamps.
func NewTable(dates []time.Time) *Table {
	d := make([]time.Time, len(dates))
	copy(d, dates)
	return &Table{dates: d, cols: make(map[string][]float64)}
}

// WithColumn returns a new table with the column added (or replaced).
// The values slice is copied.
func (t *Table) WithColumn(name string, values []float64) (*Table, error) {
	if len(values) != len(t.dates) {
		return nil, fmt.Errorf("column %s: %d values for %d rows", name, len(values), len(t.dates))
	}
	nt := t.clone()
	if _, exists := nt.cols[name]; !exists {
		nt.names = append(nt.names, name)
	}
	v := make([]float64, len(values))
	copy(v, values)
	nt.cols[name] = v
	return nt, nil
}

// Rename returns a new table with columns renamed per the mapping.
// Names absent from the mapping are kept as-is.
func (t *Table) Rename(mapping map[string]string) *Table {
	nt := &Table{dates: t.dates, cols: make(map[string][]float64, len(t.cols))}
	for _, name := range t.names {
		renamed := name
		if to, ok := mapping[name]; ok {
			renamed = to
		}
		nt.names = append(nt.names, renamed)
		nt.cols[renamed] = t.cols[name]
	}
	return nt
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.dates) }

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns the named column's values.
func (t *Table) Column(name string) ([]float64, bool) {
	v, ok := t.cols[name]
	return v, ok
}

// Date returns the timestamp of row i.
func (t *Table) Date(i int) time.Time { return t.dates[i] }

// DropIncomplete returns a new table keeping only rows where every
// required feature present in the table is defined. The earliest rows
// inevitably fall here while the longest-window indicator warms up.
func (t *Table) DropIncomplete(schema model.Schema) *Table {
	var keep []int
rows:
	for i := range t.dates {
		for _, name := range schema {
			col, ok := t.cols[name]
			if !ok {
				continue // absent columns are reported at selection
			}
			if math.IsNaN(col[i]) {
				continue rows
			}
		}
		keep = append(keep, i)
	}

	nt := &Table{cols: make(map[string][]float64, len(t.cols))}
	nt.names = append(nt.names, t.names...)
	nt.dates = make([]time.Time, len(keep))
	for _, name := range t.names {
		nt.cols[name] = make([]float64, len(keep))
	}
	for j, i := range keep {
		nt.dates[j] = t.dates[i]
		for _, name := range t.names {
			nt.cols[name][j] = t.cols[name][i]
		}
	}
	return nt
}

// SelectLatest returns the chronologically last row, validated for
// completeness against the schema. A schema name absent from the table
// fails with a MissingFeaturesError naming every absent feature.
func (t *Table) SelectLatest(schema model.Schema) (*Row, error) {
	var missing []string
	for _, name := range schema {
		if _, ok := t.cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingFeaturesError{Missing: missing}
	}
	if len(t.dates) == 0 {
		return nil, fmt.Errorf("no rows survived warm-up filtering")
	}

	i := len(t.dates) - 1
	row := &Row{Date: t.dates[i], Values: make(map[string]float64, len(t.names))}
	for _, name := range t.names {
		row.Values[name] = t.cols[name][i]
	}
	for _, name := range schema {
		if math.IsNaN(row.Values[name]) {
			return nil, fmt.Errorf("feature %s is undefined in the latest row (%s)", name, row.Date.Format("2006-01-02"))
		}
	}
	return row, nil
}

// Vector projects the row onto exactly the schema's names and order.
// Extra values in the row are ignored.
func (r *Row) Vector(schema model.Schema) ([]float64, error) {
	out := make([]float64, len(schema))
	var missing []string
	for i, name := range schema {
		v, ok := r.Values[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		out[i] = v
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingFeaturesError{Missing: missing}
	}
	return out, nil
}

func (t *Table) clone() *Table {
	nt := &Table{dates: t.dates, cols: make(map[string][]float64, len(t.cols))}
	nt.names = append(nt.names, t.names...)
	for k, v := range t.cols {
		nt.cols[k] = v
	}
	return nt
}
