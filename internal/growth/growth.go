// Package growth generates the yearly indicator series of the CETA impact
// scenario. Two curve families exist: compounding growth keyed to the
// zero-based year index (GDP, trade flows), and milestone-banded curves that
// switch closed-form expressions at the agreement's policy milestones
// (provisional entry into force 2017, full ratification 2020, maturity 2023).
// All constants are hand-tuned scenario parameters, not estimates.
package growth

import "cetasim/internal/model"

// Kind identifies one generated indicator.
type Kind string

const (
	KindGDP           Kind = "gdp"
	KindExports       Kind = "exports"
	KindImports       Kind = "imports"
	KindTariffs       Kind = "tariffs"
	KindBarriers      Kind = "non_tariff_barriers"
	KindJobs          Kind = "job_creation"
	KindSectorGrowth  Kind = "sector_growth"
	KindInvestment    Kind = "foreign_investment"
	KindGDPImpact     Kind = "gdp_impact"
	KindProductivity  Kind = "productivity_gains"
	KindSavings       Kind = "customs_savings"
	KindWineExports   Kind = "wine_exports"
	KindCheeseExports Kind = "cheese_exports"
	KindAutoExports   Kind = "auto_exports"
	KindAeroExports   Kind = "aerospace_exports"
	KindPartnerShare  Kind = "partner_exports"
)

// Milestone years of the agreement.
const (
	entryYear        = 2017
	ratificationYear = 2020
	maturityYear     = 2023
)

// Generate returns one value per year for the given indicator. The profile
// supplies base magnitudes and the classification-dependent rates; the year
// slice is used as-is, so callers control the horizon.
func Generate(kind Kind, profile model.EntityProfile, years []int) []float64 {
	values := make([]float64, 0, len(years))
	for i, year := range years {
		values = append(values, valueAt(kind, profile, i, year))
	}
	return values
}

func valueAt(kind Kind, profile model.EntityProfile, i, year int) float64 {
	switch kind {
	case KindGDP:
		return gdpAt(profile, i, year)
	case KindExports:
		return flowAt(profile.BaseExports, 0.03, 0.08, i, year)
	case KindImports:
		return flowAt(profile.BaseImports, 0.025, 0.06, i, year)
	case KindTariffs:
		return tariffAt(year)
	case KindBarriers:
		return barrierAt(year)
	case KindJobs:
		return jobsAt(year) * jobMultiplier(profile.Classification)
	case KindSectorGrowth:
		return ramp{0.015, 0.045, 0.008, 0.069, 0.005}.at(year)
	case KindInvestment:
		return investmentBase * (1 + ramp{0.12, 0.36, 0.10, 0.66, 0.08}.at(year))
	case KindGDPImpact:
		return ramp{0.0012, 0.0036, 0.0008, 0.0060, 0.0006}.at(year)
	case KindProductivity:
		return ramp{0.0008, 0.0024, 0.0006, 0.0042, 0.0004}.at(year)
	case KindSavings:
		return savingsBase * ramp{0.25, 0.75, 0.20, 1.35, 0.15}.at(year)
	default:
		curve, ok := exportCurves[kind]
		if !ok {
			return 0
		}
		return curve.at(year)
	}
}

// baseRate is the pre-agreement annual growth rate per classification.
func baseRate(classification model.Classification) float64 {
	switch classification {
	case model.ClassMemberState:
		return 0.018
	case model.ClassPartner:
		return 0.022
	case model.ClassUnion:
		return 0.019
	default:
		return 0.020
	}
}

// gdpAt applies the agreement's cumulative effect on top of the base rate:
// value = base * (1 + (rate + effect) * i), effect = 0.002 per year elapsed
// since 2016 once the agreement is in force.
func gdpAt(profile model.EntityProfile, i, year int) float64 {
	effect := 0.0
	if year >= entryYear {
		effect = 0.002 * float64(year-2016)
	}
	return profile.BaseGDP * (1 + (baseRate(profile.Classification)+effect)*float64(i))
}

// flowAt models bilateral trade flows. The agreement effect per elapsed year
// is capped at five years after 2016.
func flowAt(base, rate, effectPerYear float64, i, year int) float64 {
	effect := 0.0
	if year >= entryYear {
		elapsed := year - 2016
		if elapsed > 5 {
			elapsed = 5
		}
		effect = effectPerYear * float64(elapsed)
	}
	return base * (1 + (rate+effect)*float64(i))
}

// tariffAt returns the average tariff level per milestone band. The bands
// are flat, so the series steps down at each milestone.
func tariffAt(year int) float64 {
	switch {
	case year < entryYear:
		return 4.2
	case year < ratificationYear:
		return 1.8
	case year < maturityYear:
		return 0.7
	default:
		return 0.1
	}
}

func barrierAt(year int) float64 {
	switch {
	case year < entryYear:
		return 8.5
	case year < ratificationYear:
		return 6.2
	case year < maturityYear:
		return 4.1
	default:
		return 2.8
	}
}

// jobsAt returns cumulative job creation before classification scaling.
// Each band is linear in the years elapsed since the previous milestone and
// starts where the previous band ended.
func jobsAt(year int) float64 {
	switch {
	case year < entryYear:
		return 0
	case year < ratificationYear:
		return 8000 * float64(year-2016)
	case year < maturityYear:
		return 24000 + 5000*float64(year-2019)
	default:
		return 39000 + 3000*float64(year-2022)
	}
}

func jobMultiplier(classification model.Classification) float64 {
	switch classification {
	case model.ClassMemberState:
		return 1.0
	case model.ClassSector:
		return 0.3
	default:
		return 0.1
	}
}

// ramp is a banded curve that is zero before entry into force, then linear in
// the elapsed years within each band. The band constants are chosen so the
// curve is continuous at every milestone.
type ramp struct {
	entryRate float64 // per elapsed year in [2017,2020)
	ratifBase float64 // value at 2020
	ratifRate float64 // per elapsed year in [2020,2023)
	matBase   float64 // value at 2023
	matRate   float64 // per elapsed year from 2023 on
}

func (r ramp) at(year int) float64 {
	switch {
	case year < entryYear:
		return 0
	case year < ratificationYear:
		return r.entryRate * float64(year-2016)
	case year < maturityYear:
		return r.ratifBase + r.ratifRate*float64(year-2019)
	default:
		return r.matBase + r.matRate*float64(year-2022)
	}
}

const (
	investmentBase = 1000
	savingsBase    = 500
)

// exportCurve is the banded multiplicative curve used by the per-sector and
// per-country export series: value = base * growth(year), growth 1.0 before
// entry into force. Band bases are spelled out as literals; deriving them
// from the rates would shift the values by rounding.
type exportCurve struct {
	base      float64
	entryRate float64 // growth 1 + rate*(y-2016) in [2017,2020)
	ratifBase float64 // growth at 2020
	ratifRate float64
	matBase   float64 // growth at 2023
	matRate   float64
}

func (c exportCurve) at(year int) float64 {
	var g float64
	switch {
	case year < entryYear:
		g = 1.0
	case year < ratificationYear:
		g = 1.0 + c.entryRate*float64(year-2016)
	case year < maturityYear:
		g = c.ratifBase + c.ratifRate*float64(year-2019)
	default:
		g = c.matBase + c.matRate*float64(year-2022)
	}
	return c.base * g
}

var exportCurves = map[Kind]exportCurve{
	KindWineExports:   {1200, 0.15, 1.45, 0.12, 1.81, 0.10},
	KindCheeseExports: {850, 0.18, 1.54, 0.15, 1.99, 0.12},
	KindAutoExports:   {5800, 0.10, 1.30, 0.08, 1.54, 0.06},
	KindAeroExports:   {4200, 0.12, 1.36, 0.10, 1.66, 0.08},
	KindPartnerShare:  {1500, 0.14, 1.42, 0.11, 1.75, 0.09},
}
