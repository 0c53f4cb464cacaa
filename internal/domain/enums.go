package domain

// Unit is the base measurement unit of a product.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitLitre Unit = "litre"
)

// Valid reports whether the unit is one of the supported units.
func (u Unit) Valid() bool {
	return u == UnitKg || u == UnitLitre
}

// ExportFormat selects the bill export encoding.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)
