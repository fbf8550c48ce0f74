package pipeline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendSentinel/internal/model"
)

func testDates(n int) []time.Time {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = base.AddDate(0, 0, i)
	}
	return dates
}

func TestWithColumn_LengthMismatch(t *testing.T) {
	table := NewTable(testDates(3))
	_, err := table.WithColumn("Close", []float64{1, 2})
	assert.Error(t, err)
}

func TestRename_DoesNotMutateOriginal(t *testing.T) {
	table := NewTable(testDates(2))
	table, err := table.WithColumn("RSI_14", []float64{50, 60})
	require.NoError(t, err)

	renamed := table.Rename(map[string]string{"RSI_14": "RSI"})

	_, ok := table.Column("RSI_14")
	assert.True(t, ok, "original table keeps the raw name")
	_, ok = table.Column("RSI")
	assert.False(t, ok)

	v, ok := renamed.Column("RSI")
	assert.True(t, ok)
	assert.Equal(t, []float64{50, 60}, v)
}

func TestDropIncomplete(t *testing.T) {
	table := NewTable(testDates(4))
	var err error
	table, err = table.WithColumn("Close", []float64{1, 2, 3, 4})
	require.NoError(t, err)
	table, err = table.WithColumn("RSI", []float64{math.NaN(), math.NaN(), 55, 60})
	require.NoError(t, err)
	// A NaN in a column outside the schema must not drop rows.
	table, err = table.WithColumn("Scratch", []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()})
	require.NoError(t, err)

	filtered := table.DropIncomplete(model.Schema{"Close", "RSI"})
	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, testDates(4)[2], filtered.Date(0))

	// The original is untouched.
	assert.Equal(t, 4, table.Len())
}

func TestSelectLatest_MissingFeatures(t *testing.T) {
	table := NewTable(testDates(2))
	table, err := table.WithColumn("Close", []float64{1, 2})
	require.NoError(t, err)

	_, err = table.SelectLatest(model.Schema{"Close", "RSI", "ADX"})
	var mfe *MissingFeaturesError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, []string{"ADX", "RSI"}, mfe.Missing)
}

func TestSelectLatest_EmptyAfterFiltering(t *testing.T) {
	table := NewTable(testDates(2))
	table, err := table.WithColumn("Close", []float64{math.NaN(), math.NaN()})
	require.NoError(t, err)

	schema := model.Schema{"Close"}
	_, err = table.DropIncomplete(schema).SelectLatest(schema)
	assert.Error(t, err)
}

func TestRowVector_ProjectsSchemaOrder(t *testing.T) {
	row := &Row{
		Date:   time.Now(),
		Values: map[string]float64{"A": 1, "B": 2, "Extra": 99},
	}
	vec, err := row.Vector(model.Schema{"B", "A"})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, vec, "extra values are ignored, order follows the schema")

	_, err = row.Vector(model.Schema{"A", "Gone"})
	var mfe *MissingFeaturesError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, []string{"Gone"}, mfe.Missing)
}
