// Package scenario assembles the full CETA impact table for one entity:
// profile resolution, indicator generation, derived series, and the ordered
// trend overlay.
package scenario

import (
	"log/slog"

	"cetasim/internal/growth"
	"cetasim/internal/model"
	"cetasim/internal/registry"
)

// Fixed analysis horizon: provisional entry into force through projection end.
const (
	StartYear = 2017
	EndYear   = 2027
)

// Years returns the horizon axis, StartYear..EndYear inclusive.
func Years() []int {
	years := make([]int, 0, EndYear-StartYear+1)
	for year := StartYear; year <= EndYear; year++ {
		years = append(years, year)
	}
	return years
}

// sectorExports maps the recognized key sectors of member states to their
// export column and curve. Other key sectors are not tracked separately.
var sectorExports = []struct {
	key    string
	column string
	kind   growth.Kind
}{
	{"vin", model.ExportColumnPrefix + "Vin", growth.KindWineExports},
	{"fromage", model.ExportColumnPrefix + "Fromage", growth.KindCheeseExports},
	{"automobile", model.ExportColumnPrefix + "Automobile", growth.KindAutoExports},
	{"aerospatial", model.ExportColumnPrefix + "Aerospatial", growth.KindAeroExports},
}

// Builder produces scenario tables from entity names.
type Builder struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// NewBuilder returns a builder over the given registry.
func NewBuilder(reg *registry.Registry, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{registry: reg, logger: logger}
}

// Build generates the complete table for the named entity. Unknown names
// resolve to the default profile, so Build always succeeds. The trade balance
// reflects pre-overlay export/import values (see DESIGN.md); the overlay then
// adjusts the flow columns in place.
func (b *Builder) Build(name string) (*model.Table, model.EntityProfile) {
	profile := b.registry.Resolve(name)
	years := Years()
	table := model.NewTable(years)

	b.logger.Info("building scenario table",
		"entity", name,
		"classification", string(profile.Classification),
		"years", len(years),
	)

	add := func(column string, kind growth.Kind) {
		// The axis is fixed, so a length mismatch cannot happen here.
		if err := table.AddColumn(column, growth.Generate(kind, profile, years)); err != nil {
			panic(err)
		}
	}

	add(model.ColGDP, growth.KindGDP)
	add(model.ColExports, growth.KindExports)
	add(model.ColImports, growth.KindImports)

	exports, _ := table.Column(model.ColExports)
	imports, _ := table.Column(model.ColImports)
	if err := table.AddColumn(model.ColBalance, TradeBalance(exports, imports)); err != nil {
		panic(err)
	}

	add(model.ColTariffs, growth.KindTariffs)
	add(model.ColBarriers, growth.KindBarriers)
	add(model.ColJobs, growth.KindJobs)
	add(model.ColSectorGrowth, growth.KindSectorGrowth)
	add(model.ColInvestment, growth.KindInvestment)
	add(model.ColGDPImpact, growth.KindGDPImpact)
	add(model.ColProductivity, growth.KindProductivity)
	add(model.ColSavings, growth.KindSavings)

	switch profile.Classification {
	case model.ClassMemberState:
		for _, key := range profile.Keys {
			for _, s := range sectorExports {
				if key == s.key {
					add(s.column, s.kind)
				}
			}
		}
	case model.ClassSector:
		for _, country := range profile.Keys {
			add(model.ExportColumnPrefix+country, growth.KindPartnerShare)
		}
	}

	ApplyOverlays(table)
	return table, profile
}

// TradeBalance is the pointwise difference exports - imports. Both series
// come off the same table axis; a length mismatch is a programming error.
func TradeBalance(exports, imports []float64) []float64 {
	if len(exports) != len(imports) {
		panic("scenario: trade balance over mismatched series")
	}
	balance := make([]float64, len(exports))
	for i := range exports {
		balance[i] = exports[i] - imports[i]
	}
	return balance
}
