package report

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cetasim/internal/model"
)

func TestWriteWorkbook(t *testing.T) {
	table, _ := buildTable(t, "France")
	writer := NewWorkbookWriter(t.TempDir(), slog.Default())

	path, err := writer.WriteWorkbook("France", table)
	require.NoError(t, err)
	assert.Contains(t, path, "France_ceta_analysis.xlsx")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, dataSheet)
	assert.Contains(t, sheets, chartSheet)
	assert.Contains(t, sheets, comparisonSheet)

	// Header row matches the table schema.
	first, err := f.GetCellValue(dataSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, model.ColYear, first)
	second, err := f.GetCellValue(dataSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, table.Columns()[0], second)

	// 11 data rows under the header.
	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 12)
}

func TestSplitMeans(t *testing.T) {
	years := []int{2015, 2016, 2017, 2018}
	values := []float64{2, 4, 10, 20}

	before, after := splitMeans(years, values, 2017)
	assert.Equal(t, 3.0, before)
	assert.Equal(t, 15.0, after)

	// Empty before-side (the default horizon) reports zero.
	before, after = splitMeans([]int{2017}, []float64{8}, 2017)
	assert.Equal(t, 0.0, before)
	assert.Equal(t, 8.0, after)
}
