package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendSentinel/internal/model"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "Date,Close,RSI\n2025-01-02,100.5,48.2\n2025-01-03,101.0,51.7\n")

	table, err := LoadCSV(path, "Date")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), table.Date(1))

	row, err := table.SelectLatest(model.Schema{"Close", "RSI"})
	require.NoError(t, err)
	assert.Equal(t, 101.0, row.Values["Close"])
	assert.Equal(t, 51.7, row.Values["RSI"])
}

func TestLoadCSV_EmptyCellsBecomeIncompleteRows(t *testing.T) {
	path := writeCSV(t, "Date,Close,RSI\n2025-01-02,100.5,\n2025-01-03,101.0,51.7\n")

	table, err := LoadCSV(path, "Date")
	require.NoError(t, err)

	schema := model.Schema{"Close", "RSI"}
	filtered := table.DropIncomplete(schema)
	assert.Equal(t, 1, filtered.Len())

	row, err := filtered.SelectLatest(schema)
	require.NoError(t, err)
	assert.Equal(t, 101.0, row.Values["Close"])
}

func TestLoadCSV_Errors(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), "Date")
	assert.Error(t, err)

	_, err = LoadCSV(writeCSV(t, "Date,Close\n"), "Date")
	assert.Error(t, err, "header only")

	_, err = LoadCSV(writeCSV(t, "Day,Close\n2025-01-02,1\n"), "Date")
	assert.Error(t, err, "missing date column")

	_, err = LoadCSV(writeCSV(t, "Date,Close\nnot-a-date,1\n"), "Date")
	assert.Error(t, err)

	_, err = LoadCSV(writeCSV(t, "Date,Close\n2025-01-02,abc\n"), "Date")
	assert.Error(t, err)
}
