package report

import (
	"fmt"
	"io"
	"strings"

	"cetasim/internal/model"
	"cetasim/internal/scenario"
)

// WriteSummary prints the aggregate statistics of a generated table together
// with the entity's configuration. Everything here is derived from the table;
// no new state is produced.
func WriteSummary(w io.Writer, profile model.EntityProfile, table *model.Table) error {
	exports := mustColumn(table, model.ColExports)
	imports := mustColumn(table, model.ColImports)
	balance := mustColumn(table, model.ColBalance)
	jobs := mustColumn(table, model.ColJobs)
	gdpImpact := mustColumn(table, model.ColGDPImpact)
	savings := mustColumn(table, model.ColSavings)
	tariffs := mustColumn(table, model.ColTariffs)
	barriers := mustColumn(table, model.ColBarriers)

	var b strings.Builder
	fmt.Fprintf(&b, "CETA impact summary - %s (%d-%d)\n", profile.Name, scenario.StartYear, scenario.EndYear)
	fmt.Fprintln(&b, strings.Repeat("=", 70))

	fmt.Fprintln(&b, "\nTrade impact:")
	fmt.Fprintf(&b, "  export growth: %.1f%%\n", relGrowth(exports))
	fmt.Fprintf(&b, "  import growth: %.1f%%\n", relGrowth(imports))
	fmt.Fprintf(&b, "  mean trade balance: %.0f MEUR\n", mean(balance))

	fmt.Fprintln(&b, "\nEconomic impact:")
	fmt.Fprintf(&b, "  total jobs created: %.0f\n", sum(jobs))
	fmt.Fprintf(&b, "  mean GDP impact: %.3f%%\n", mean(gdpImpact)*100)
	fmt.Fprintf(&b, "  total customs savings: %.0f MEUR\n", sum(savings))

	fmt.Fprintln(&b, "\nBarrier reduction:")
	fmt.Fprintf(&b, "  tariff reduction: %.1f%%\n", reduction(tariffs))
	fmt.Fprintf(&b, "  non-tariff barrier reduction: %.1f%%\n", reduction(barriers))

	fmt.Fprintf(&b, "\nEntity profile: %s\n", profile.Classification)
	if profile.IsCountry() {
		fmt.Fprintf(&b, "  key sectors: %s\n", strings.Join(profile.Keys, ", "))
	} else {
		fmt.Fprintf(&b, "  key countries: %s\n", strings.Join(profile.Keys, ", "))
	}

	fmt.Fprintln(&b, "\nMilestones:")
	fmt.Fprintln(&b, "  2017: provisional entry into force")
	fmt.Fprintln(&b, "  2017-2019: progressive ramp-up of bilateral trade")
	fmt.Fprintln(&b, "  2020: pandemic shock")
	fmt.Fprintln(&b, "  2021-2022: recovery and full ratification")
	fmt.Fprintln(&b, "  2023-2027: full effect of the agreement")

	writeRecommendations(&b, profile)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRecommendations(b *strings.Builder, profile model.EntityProfile) {
	fmt.Fprintln(b, "\nRecommendations:")
	if profile.IsCountry() {
		fmt.Fprintln(b, "  - maximize export opportunities in key sectors")
		fmt.Fprintln(b, "  - align norms and standards to ease trade")
		fmt.Fprintln(b, "  - deepen regulatory cooperation with Canada")
	} else {
		fmt.Fprintln(b, "  - identify specialization niches in the value chain")
		fmt.Fprintln(b, "  - build transatlantic industrial partnerships")
		fmt.Fprintln(b, "  - adapt products to the Canadian market")
	}
	for _, key := range profile.Keys {
		switch key {
		case "vin":
			fmt.Fprintln(b, "  - leverage geographical indication protection for wine")
		case "fromage":
			fmt.Fprintln(b, "  - use the import quotas for fine cheese")
		case "automobile":
			fmt.Fprintln(b, "  - benefit from tariff elimination on vehicles")
		case "services":
			fmt.Fprintln(b, "  - explore financial and professional services openings")
		}
	}
}

func mustColumn(table *model.Table, name string) []float64 {
	col, ok := table.Column(name)
	if !ok {
		panic("report: missing column " + name)
	}
	return col
}

func relGrowth(values []float64) float64 {
	return (values[len(values)-1]/values[0] - 1) * 100
}

func reduction(values []float64) float64 {
	return (values[0] - values[len(values)-1]) / values[0] * 100
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}
