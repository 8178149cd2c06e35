package fuel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")
	require.NoError(t, ExportWorkbook(allAnalyses(t), 2024, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Prices", "Statistics", "Predictions"}, f.GetSheetList())

	// Price sheet: header row plus one row per month
	rows, err := f.GetRows("Prices")
	require.NoError(t, err)
	require.Len(t, rows, MonthsPerYear+1)
	assert.Equal(t, "Month", rows[0][0])
	assert.Equal(t, "January", rows[1][0])
	assert.Equal(t, "20.5", rows[1][1])

	// Statistics sheet: one row per fuel type
	stats, err := f.GetRows("Statistics")
	require.NoError(t, err)
	require.Len(t, stats, 4)
	assert.Equal(t, "Fuel Type", stats[0][0])

	// Predictions sheet carries the trend and three forecast columns
	preds, err := f.GetRows("Predictions")
	require.NoError(t, err)
	require.Len(t, preds, 4)
	assert.Contains(t, preds[0], "January 2025")
	assert.Contains(t, []string{"UPWARD", "DOWNWARD", "STABLE"}, preds[1][1])
}

func TestExportWorkbookRejectsEmptyInput(t *testing.T) {
	assert.Error(t, ExportWorkbook(nil, 2024, "unused.xlsx"))
}
