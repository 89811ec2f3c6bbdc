package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"cetasim/internal/model"
	"cetasim/internal/scenario"
)

const (
	dataSheet       = "Data"
	chartSheet      = "Charts"
	comparisonSheet = "Comparison"
)

// WorkbookWriter renders the analysis workbook for a scenario table: the raw
// dataset plus the chart set (trade evolution, trade balance, barrier
// reduction, sectoral exports, before/after comparison).
type WorkbookWriter struct {
	dir    string
	logger *slog.Logger
}

// NewWorkbookWriter writes workbooks into dir, creating it on first use.
func NewWorkbookWriter(dir string, logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{dir: dir, logger: logger}
}

// WorkbookFileName returns the analysis workbook file name for an entity.
func WorkbookFileName(entity string) string {
	return fmt.Sprintf("%s_ceta_analysis.xlsx", entity)
}

// WriteWorkbook renders the workbook and returns the written path.
func (w *WorkbookWriter) WriteWorkbook(entity string, table *model.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create output dir: %w", err)
	}
	path := filepath.Join(w.dir, WorkbookFileName(entity))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return "", fmt.Errorf("report: rename data sheet: %w", err)
	}
	if err := writeDataSheet(f, table); err != nil {
		return "", err
	}
	if err := writeComparisonSheet(f, table); err != nil {
		return "", err
	}
	if err := writeCharts(f, table); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("report: save workbook: %w", err)
	}
	w.logger.Info("wrote analysis workbook", "path", path)
	return path, nil
}

func writeDataSheet(f *excelize.File, table *model.Table) error {
	header := append([]string{model.ColYear}, table.Columns()...)
	for c, name := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("report: data header cell: %w", err)
		}
		if err := f.SetCellValue(dataSheet, cell, name); err != nil {
			return fmt.Errorf("report: data header: %w", err)
		}
	}
	for i, year := range table.Years() {
		row := make([]interface{}, 0, len(header))
		row = append(row, year)
		for _, v := range table.Row(i) {
			row = append(row, v)
		}
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return fmt.Errorf("report: data cell: %w", err)
			}
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return fmt.Errorf("report: data row %d: %w", i, err)
			}
		}
	}
	return nil
}

// writeComparisonSheet writes mean values before and after entry into force
// for the headline indicators. With the default horizon the before side is
// empty and reported as zero.
func writeComparisonSheet(f *excelize.File, table *model.Table) error {
	if _, err := f.NewSheet(comparisonSheet); err != nil {
		return fmt.Errorf("report: comparison sheet: %w", err)
	}

	indicators := []struct {
		label  string
		column string
	}{
		{"Exportations", model.ColExports},
		{"Importations", model.ColImports},
		{"Emplois crees", model.ColJobs},
		{"Investissements", model.ColInvestment},
	}

	rows := [][]interface{}{{"Indicateur", "Avant CETA", "Apres CETA"}}
	for _, ind := range indicators {
		col := mustColumn(table, ind.column)
		before, after := splitMeans(table.Years(), col, scenario.StartYear)
		rows = append(rows, []interface{}{ind.label, before, after})
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("report: comparison cell: %w", err)
			}
			if err := f.SetCellValue(comparisonSheet, cell, v); err != nil {
				return fmt.Errorf("report: comparison row %d: %w", r, err)
			}
		}
	}
	return nil
}

// splitMeans returns the mean of values with year < pivot and year >= pivot.
func splitMeans(years []int, values []float64, pivot int) (float64, float64) {
	var before, after []float64
	for i, year := range years {
		if year < pivot {
			before = append(before, values[i])
		} else {
			after = append(after, values[i])
		}
	}
	return mean(before), mean(after)
}

func writeCharts(f *excelize.File, table *model.Table) error {
	if _, err := f.NewSheet(chartSheet); err != nil {
		return fmt.Errorf("report: chart sheet: %w", err)
	}

	charts := []struct {
		cell  string
		chart *excelize.Chart
	}{
		{"A1", lineChart("Evolution des echanges commerciaux (MEUR)", table,
			model.ColExports, model.ColImports)},
		{"J1", columnChart("Balance commerciale avec le Canada (MEUR)", table,
			model.ColBalance)},
		{"A16", lineChart("Reduction des barrieres commerciales", table,
			model.ColTariffs, model.ColBarriers)},
		{"J16", lineChart("Impact sur l'emploi et les investissements", table,
			model.ColJobs, model.ColInvestment)},
		{"A31", lineChart("Gains economiques du CETA", table,
			model.ColSavings, model.ColSectorGrowth)},
		{"J31", comparisonChart()},
	}
	if sectors := sectorColumns(table); len(sectors) > 0 {
		charts = append(charts, struct {
			cell  string
			chart *excelize.Chart
		}{"A46", lineChart("Analyse sectorielle - Exportations (MEUR)", table, sectors...)})
	}

	for _, c := range charts {
		if c.chart == nil {
			continue
		}
		if err := f.AddChart(chartSheet, c.cell, c.chart); err != nil {
			return fmt.Errorf("report: add chart: %w", err)
		}
	}
	return nil
}

// sectorColumns lists the per-sector/per-country export columns, capped at
// five series to keep the chart readable.
func sectorColumns(table *model.Table) []string {
	var names []string
	for _, name := range table.Columns() {
		if name == model.ColExports || !strings.HasPrefix(name, model.ExportColumnPrefix) {
			continue
		}
		names = append(names, name)
		if len(names) == 5 {
			break
		}
	}
	return names
}

func lineChart(title string, table *model.Table, columns ...string) *excelize.Chart {
	return dataChart(excelize.Line, title, table, columns)
}

func columnChart(title string, table *model.Table, columns ...string) *excelize.Chart {
	return dataChart(excelize.Col, title, table, columns)
}

func dataChart(kind excelize.ChartType, title string, table *model.Table, columns []string) *excelize.Chart {
	lastRow := table.NumRows() + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", dataSheet, lastRow)

	series := make([]excelize.ChartSeries, 0, len(columns))
	for _, name := range columns {
		idx := columnIndex(table, name)
		if idx < 0 {
			continue
		}
		ref, err := excelize.ColumnNumberToName(idx + 2)
		if err != nil {
			continue
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", dataSheet, ref),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", dataSheet, ref, ref, lastRow),
		})
	}
	if len(series) == 0 {
		return nil
	}
	return &excelize.Chart{
		Type:   kind,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
}

// comparisonChart plots the before/after means computed on the comparison
// sheet.
func comparisonChart() *excelize.Chart {
	return &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       comparisonSheet + "!$B$1",
				Categories: comparisonSheet + "!$A$2:$A$5",
				Values:     comparisonSheet + "!$B$2:$B$5",
			},
			{
				Name:       comparisonSheet + "!$C$1",
				Categories: comparisonSheet + "!$A$2:$A$5",
				Values:     comparisonSheet + "!$C$2:$C$5",
			},
		},
		Title:  []excelize.RichTextRun{{Text: "Comparaison avant/apres CETA"}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
}

func columnIndex(table *model.Table, name string) int {
	for i, col := range table.Columns() {
		if col == name {
			return i
		}
	}
	return -1
}
