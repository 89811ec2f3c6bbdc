package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cetasim/internal/model"
)

func yearRange(from, to int) []int {
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

var franceProfile = model.EntityProfile{
	Name:           "France",
	Classification: model.ClassMemberState,
	BaseGDP:        2700000,
	BaseExports:    8500,
	BaseImports:    7200,
	Keys:           []string{"aerospatial", "vin", "fromage", "luxe", "automobile"},
}

func TestGDPFirstYearEqualsBase(t *testing.T) {
	values := Generate(KindGDP, franceProfile, yearRange(2017, 2027))
	require.Len(t, values, 11)
	// i=0 cancels every rate term.
	assert.Equal(t, 2700000.0, values[0])
}

func TestGDPBaseRateByClassification(t *testing.T) {
	years := yearRange(2017, 2027)
	tests := []struct {
		classification model.Classification
		rate           float64
	}{
		{model.ClassMemberState, 0.018},
		{model.ClassPartner, 0.022},
		{model.ClassUnion, 0.019},
		{model.ClassSector, 0.020},
	}
	for _, tt := range tests {
		profile := model.EntityProfile{Classification: tt.classification, BaseGDP: 1000}
		values := Generate(KindGDP, profile, years)
		// Second year: base * (1 + (rate + 0.002*(2018-2016)) * 1).
		want := 1000 * (1 + (tt.rate + 0.002*2))
		assert.InDelta(t, want, values[1], 1e-9, "classification %s", tt.classification)
	}
}

func TestTariffBandConstants(t *testing.T) {
	years := yearRange(2015, 2027)
	values := Generate(KindTariffs, franceProfile, years)

	byYear := make(map[int]float64, len(years))
	for i, year := range years {
		byYear[year] = values[i]
	}

	// Band boundaries of the tariff curve.
	assert.Equal(t, 4.2, byYear[2016])
	assert.Equal(t, 1.8, byYear[2017])
	assert.Equal(t, 1.8, byYear[2019])
	assert.Equal(t, 0.7, byYear[2020])
	assert.Equal(t, 0.7, byYear[2022])
	assert.Equal(t, 0.1, byYear[2023])
	assert.Equal(t, 0.1, byYear[2027])
}

func TestBarrierBandConstants(t *testing.T) {
	years := []int{2016, 2017, 2020, 2023}
	values := Generate(KindBarriers, franceProfile, years)
	assert.Equal(t, []float64{8.5, 6.2, 4.1, 2.8}, values)
}

func TestExportFlowFormula(t *testing.T) {
	years := yearRange(2017, 2027)
	values := Generate(KindExports, franceProfile, years)

	// 2017 (i=0): multiplier is 1 regardless of rates.
	assert.Equal(t, 8500.0, values[0])
	// 2018 (i=1): effect 0.08*2 elapsed years, not yet capped.
	assert.InDelta(t, 8500*(1+(0.03+0.08*2)*1), values[1], 1e-9)
	// 2023 (i=6): elapsed years capped at 5.
	assert.InDelta(t, 8500*(1+(0.03+0.08*5)*6), values[6], 1e-9)
}

func TestImportFlowFormula(t *testing.T) {
	values := Generate(KindImports, franceProfile, yearRange(2017, 2027))
	assert.Equal(t, 7200.0, values[0])
	assert.InDelta(t, 7200*(1+(0.025+0.06*2)*1), values[1], 1e-9)
}

func TestJobCreationScaling(t *testing.T) {
	years := []int{2018}
	base := 8000.0 * 2 // 8000 per elapsed year since 2016

	member := Generate(KindJobs, model.EntityProfile{Classification: model.ClassMemberState}, years)
	sector := Generate(KindJobs, model.EntityProfile{Classification: model.ClassSector}, years)
	partner := Generate(KindJobs, model.EntityProfile{Classification: model.ClassPartner}, years)
	union := Generate(KindJobs, model.EntityProfile{Classification: model.ClassUnion}, years)

	assert.Equal(t, base, member[0])
	assert.Equal(t, base*0.3, sector[0])
	assert.Equal(t, base*0.1, partner[0])
	assert.Equal(t, base*0.1, union[0])
}

func TestJobCreationBands(t *testing.T) {
	profile := model.EntityProfile{Classification: model.ClassMemberState}
	years := []int{2016, 2019, 2020, 2022, 2023, 2027}
	values := Generate(KindJobs, profile, years)
	assert.Equal(t, []float64{0, 24000, 29000, 39000, 42000, 54000}, values)
}

func TestInvestmentBands(t *testing.T) {
	values := Generate(KindInvestment, franceProfile, []int{2016, 2017, 2020, 2023})
	assert.Equal(t, 1000.0, values[0])
	assert.InDelta(t, 1000*(1+0.12), values[1], 1e-9)
	assert.InDelta(t, 1000*(1+0.36+0.10), values[2], 1e-9)
	assert.InDelta(t, 1000*(1+0.66+0.08), values[3], 1e-9)
}

func TestCustomsSavingsBands(t *testing.T) {
	values := Generate(KindSavings, franceProfile, []int{2016, 2017, 2020, 2023})
	assert.Equal(t, 0.0, values[0])
	assert.InDelta(t, 500*0.25, values[1], 1e-9)
	assert.InDelta(t, 500*(0.75+0.20), values[2], 1e-9)
	assert.InDelta(t, 500*(1.35+0.15), values[3], 1e-9)
}

func TestSectorExportCurves(t *testing.T) {
	years := []int{2016, 2017, 2020, 2023}
	tests := []struct {
		kind Kind
		want []float64
	}{
		{KindWineExports, []float64{1200, 1200 * 1.15, 1200 * 1.57, 1200 * 1.91}},
		{KindCheeseExports, []float64{850, 850 * 1.18, 850 * 1.69, 850 * 2.11}},
		{KindAutoExports, []float64{5800, 5800 * 1.10, 5800 * 1.38, 5800 * 1.60}},
		{KindAeroExports, []float64{4200, 4200 * 1.12, 4200 * 1.46, 4200 * 1.74}},
		{KindPartnerShare, []float64{1500, 1500 * 1.14, 1500 * 1.53, 1500 * 1.84}},
	}
	for _, tt := range tests {
		values := Generate(tt.kind, franceProfile, years)
		for i := range tt.want {
			assert.InDelta(t, tt.want[i], values[i], 1e-9, "kind %s year %d", tt.kind, years[i])
		}
	}
}

func TestRatioBands(t *testing.T) {
	years := []int{2016, 2017, 2020, 2023}

	sector := Generate(KindSectorGrowth, franceProfile, years)
	assert.InDelta(t, 0.0, sector[0], 1e-12)
	assert.InDelta(t, 0.015, sector[1], 1e-12)
	assert.InDelta(t, 0.053, sector[2], 1e-12)
	assert.InDelta(t, 0.074, sector[3], 1e-12)

	impact := Generate(KindGDPImpact, franceProfile, years)
	assert.InDelta(t, 0.0012, impact[1], 1e-12)
	assert.InDelta(t, 0.0044, impact[2], 1e-12)
	assert.InDelta(t, 0.0066, impact[3], 1e-12)

	productivity := Generate(KindProductivity, franceProfile, years)
	assert.InDelta(t, 0.0008, productivity[1], 1e-12)
	assert.InDelta(t, 0.0030, productivity[2], 1e-12)
	assert.InDelta(t, 0.0046, productivity[3], 1e-12)
}

func TestUnknownKindIsZero(t *testing.T) {
	values := Generate(Kind("bogus"), franceProfile, []int{2017, 2018})
	assert.Equal(t, []float64{0, 0}, values)
}
