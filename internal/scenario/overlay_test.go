package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cetasim/internal/model"
)

func flatTable(t *testing.T, value float64) *model.Table {
	t.Helper()
	table := model.NewTable(Years())
	ones := func() []float64 {
		col := make([]float64, table.NumRows())
		for i := range col {
			col[i] = value
		}
		return col
	}
	require.NoError(t, table.AddColumn(model.ColExports, ones()))
	require.NoError(t, table.AddColumn(model.ColImports, ones()))
	require.NoError(t, table.AddColumn(model.ColInvestment, ones()))
	require.NoError(t, table.AddColumn(model.ColGDP, ones()))
	return table
}

func TestApplyOverlaysPerYearComposition(t *testing.T) {
	table := flatTable(t, 1.0)
	ApplyOverlays(table)

	exports, _ := table.Column(model.ColExports)
	imports, _ := table.Column(model.ColImports)
	investment, _ := table.Column(model.ColInvestment)

	for i, year := range table.Years() {
		wantExp, wantImp, wantInv := 1.0, 1.0, 1.0
		wantExp *= 1.08
		wantImp *= 1.06
		if year >= 2020 {
			wantExp *= 1.12
			wantImp *= 1.09
			wantInv *= 1.15
		}
		if year >= 2020 && year <= 2021 {
			wantExp *= 0.85
			wantImp *= 0.88
		}
		if year >= 2022 {
			wantExp *= 1.18
			wantImp *= 1.15
		}
		assert.Equal(t, wantExp, exports[i], "exports year %d", year)
		assert.Equal(t, wantImp, imports[i], "imports year %d", year)
		assert.Equal(t, wantInv, investment[i], "investment year %d", year)
	}
}

func TestApplyOverlaysLeavesOtherColumnsAlone(t *testing.T) {
	table := flatTable(t, 7.5)
	ApplyOverlays(table)

	gdp, _ := table.Column(model.ColGDP)
	for i := range gdp {
		assert.Equal(t, 7.5, gdp[i])
	}
}

func TestApplyOverlaysToleratesMissingColumns(t *testing.T) {
	table := model.NewTable(Years())
	col := make([]float64, table.NumRows())
	for i := range col {
		col[i] = 2.0
	}
	require.NoError(t, table.AddColumn(model.ColExports, col))

	assert.NotPanics(t, func() { ApplyOverlays(table) })
}
