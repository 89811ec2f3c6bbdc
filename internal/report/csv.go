// Package report renders a generated scenario table into its output
// artifacts: the CSV dataset, the chart workbook, and the textual summary.
// The table is consumed read-only.
package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"cetasim/internal/model"
	"cetasim/internal/scenario"
)

// CSVWriter writes scenario tables as CSV datasets.
type CSVWriter struct {
	dir    string
	logger *slog.Logger
}

// NewCSVWriter writes files into dir, creating it on first use.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{dir: dir, logger: logger}
}

// DataFileName returns the dataset file name for an entity.
func DataFileName(entity string) string {
	return fmt.Sprintf("%s_ceta_data_%d_%d.csv", entity, scenario.StartYear, scenario.EndYear)
}

// WriteTable writes the table year-ascending with a header row, one row per
// year, and returns the written path. A UTF-8 BOM is prepended so the French
// column names open cleanly in Excel.
func (w *CSVWriter) WriteTable(entity string, table *model.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create output dir: %w", err)
	}
	path := filepath.Join(w.dir, DataFileName(entity))

	w.logger.Info("writing scenario dataset",
		"path", path,
		"columns", len(table.Columns())+1,
		"rows", table.NumRows(),
	)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create csv: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return "", fmt.Errorf("report: write BOM: %w", err)
	}

	writer := csv.NewWriter(file)

	header := append([]string{model.ColYear}, table.Columns()...)
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("report: write header: %w", err)
	}

	years := table.Years()
	for i, year := range years {
		record := make([]string, 0, len(header))
		record = append(record, strconv.Itoa(year))
		for _, value := range table.Row(i) {
			record = append(record, strconv.FormatFloat(value, 'f', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("report: write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("report: flush csv: %w", err)
	}
	return path, nil
}
