package model

import "fmt"

// Classification selects the growth-rate constants and the set of columns
// generated for an entity. The wire values are the dataset's French labels.
type Classification string

const (
	ClassMemberState Classification = "pays_ue"
	ClassPartner     Classification = "pays_partenaire"
	ClassUnion       Classification = "union"
	ClassSector      Classification = "secteur"
)

// EntityProfile is the static configuration of one analyzable entity.
// For country-like classifications, Keys lists key export sectors; for
// ClassSector it lists key counterpart countries. Base figures are in
// millions of euros (BaseGDP unused for sectors).
type EntityProfile struct {
	Name           string
	Classification Classification
	BaseGDP        float64
	BaseExports    float64
	BaseImports    float64
	Keys           []string
}

// IsCountry reports whether the profile describes a country-like entity
// rather than an economic sector.
func (p EntityProfile) IsCountry() bool {
	return p.Classification != ClassSector
}

// Column names shared by the generator, persistence and reporting layers,
// as they appear in the exported CSV dataset.
const (
	ColYear         = "Annee"
	ColGDP          = "PIB"
	ColExports      = "Exportations_Vers_Canada"
	ColImports      = "Importations_Du_Canada"
	ColBalance      = "Balance_Commerciale"
	ColTariffs      = "Droits_Douane_Moyens"
	ColBarriers     = "Barrieres_Non_Tarifaires"
	ColJobs         = "Creation_Emplois"
	ColSectorGrowth = "Croissance_Sectorielle"
	ColInvestment   = "Investissements_Etrangers"
	ColGDPImpact    = "Impact_Sur_PIB"
	ColProductivity = "Gains_Productivite"
	ColSavings      = "Economies_Douanieres"
)

// ExportColumnPrefix prefixes every per-sector and per-country export column.
const ExportColumnPrefix = "Exportations_"

// Table is a column-oriented scenario table: named float series sharing one
// year axis. Columns keep insertion order. The overlay stage mutates column
// values in place; the table is otherwise append-only.
type Table struct {
	years []int
	order []string
	cols  map[string][]float64
}

// NewTable creates an empty table over the given year axis.
func NewTable(years []int) *Table {
	axis := make([]int, len(years))
	copy(axis, years)
	return &Table{
		years: axis,
		cols:  make(map[string][]float64),
	}
}

// Years returns the shared year axis.
func (t *Table) Years() []int {
	return t.years
}

// NumRows returns the number of rows (years) in the table.
func (t *Table) NumRows() int {
	return len(t.years)
}

// AddColumn appends a named series. The series must match the year axis
// length and the name must be unused.
func (t *Table) AddColumn(name string, values []float64) error {
	if len(values) != len(t.years) {
		return fmt.Errorf("table: column %s has %d values, axis has %d years", name, len(values), len(t.years))
	}
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("table: column %s already present", name)
	}
	t.order = append(t.order, name)
	t.cols[name] = values
	return nil
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	return t.order
}

// Column returns the series for name. The returned slice aliases the table's
// storage; writing through it mutates the table.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.cols[name]
	return col, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, 0, len(t.order))
	for _, name := range t.order {
		row = append(row, t.cols[name][i])
	}
	return row
}
