package billing

import (
	"fmt"
	"math"

	"billbook/internal/domain"
)

// PackingDisplay is a packing value split into whole and sub units for
// display, e.g. 1.250 kg -> 1 kg 250 gm.
type PackingDisplay struct {
	Main      int
	Sub       int
	MainLabel string
	SubLabel  string
}

// Set reports whether the display holds a real packing. The zero value is
// the "unset" sentinel returned for missing inputs.
func (d PackingDisplay) Set() bool {
	return d.MainLabel != ""
}

// String renders the display as shown in packing dropdowns and invoices.
func (d PackingDisplay) String() string {
	if !d.Set() {
		return ""
	}
	return fmt.Sprintf("%d %s %d %s", d.Main, d.MainLabel, d.Sub, d.SubLabel)
}

// FormatPacking splits a decimal packing value into a main-unit/sub-unit
// pair. The sub unit is always thousandths of the main unit, so values with
// more than three fractional digits are rounded to the nearest gram or
// millilitre. A non-positive value or unknown unit yields the unset display.
func FormatPacking(value float64, unit domain.Unit) PackingDisplay {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return PackingDisplay{}
	}

	var mainLabel, subLabel string
	switch unit {
	case domain.UnitKg:
		mainLabel, subLabel = "kg", "gm"
	case domain.UnitLitre:
		mainLabel, subLabel = "ltr", "ml"
	default:
		return PackingDisplay{}
	}

	main := int(math.Floor(value))
	sub := int(math.Round((value - math.Floor(value)) * 1000))
	return PackingDisplay{Main: main, Sub: sub, MainLabel: mainLabel, SubLabel: subLabel}
}
