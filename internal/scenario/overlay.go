package scenario

import "cetasim/internal/model"

// An overlayRule is one year-gated multiplicative adjustment. Rules are
// applied per row in declaration order; later rules multiply values already
// adjusted by earlier ones, so the order is part of the contract.
type overlayRule struct {
	name    string
	applies func(year int) bool
	factors []columnFactor
}

type columnFactor struct {
	column string
	factor float64
}

// overlayRules is the fixed adjustment sequence: provisional entry into
// force, full ratification, the 2020-2021 external shock, and the recovery
// from 2022 on. A year can match several rules; their factors compound.
var overlayRules = []overlayRule{
	{
		name:    "provisional entry into force",
		applies: func(year int) bool { return year >= 2017 },
		factors: []columnFactor{
			{model.ColExports, 1.08},
			{model.ColImports, 1.06},
		},
	},
	{
		name:    "full ratification",
		applies: func(year int) bool { return year >= 2020 },
		factors: []columnFactor{
			{model.ColExports, 1.12},
			{model.ColImports, 1.09},
			{model.ColInvestment, 1.15},
		},
	},
	{
		name:    "pandemic shock",
		applies: func(year int) bool { return year >= 2020 && year <= 2021 },
		factors: []columnFactor{
			{model.ColExports, 0.85},
			{model.ColImports, 0.88},
		},
	},
	{
		name:    "post-pandemic recovery",
		applies: func(year int) bool { return year >= 2022 },
		factors: []columnFactor{
			{model.ColExports, 1.18},
			{model.ColImports, 1.15},
		},
	},
}

// ApplyOverlays mutates the flow and investment columns of the table in
// place, row by row, applying every matching rule in declaration order.
func ApplyOverlays(table *model.Table) {
	for i, year := range table.Years() {
		for _, rule := range overlayRules {
			if !rule.applies(year) {
				continue
			}
			for _, f := range rule.factors {
				col, ok := table.Column(f.column)
				if !ok {
					continue
				}
				col[i] *= f.factor
			}
		}
	}
}
