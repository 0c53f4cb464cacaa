// Package billing holds the pure bill computation rules: line amounts,
// GST totals, packing display and amount-in-words conversion. Everything
// here is a deterministic function of its inputs and safe to call from any
// number of request handlers.
package billing

import (
	"math"

	"billbook/internal/domain"
)

// GST rates. Intra-state sales split the 18% levy between central and state
// components; inter-state sales charge the full rate as integrated tax.
const (
	CGSTRate = 0.09
	SGSTRate = 0.09
	IGSTRate = 0.18
)

// Totals holds the aggregated tax breakup of a bill.
type Totals struct {
	Total      float64 `json:"total"`
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	IGST       float64 `json:"igst"`
	GrandTotal float64 `json:"grand_total"`
}

// Round2 rounds to two decimal places for currency display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineAmount computes a line's amount from quantity, packing factor, rate
// and discount. A non-finite result means an operand was missing, and the
// amount is coerced to 0 rather than propagated.
func LineAmount(qty int, packingValue, rate, discount float64) float64 {
	amount := float64(qty)*packingValue*rate - discount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// ComputeTotals sums line amounts and applies the GST split. CGST/SGST and
// IGST are mutually exclusive on the outsideGujarat flag. The grand total is
// the exact sum of the already-rounded components, with no further rounding.
func ComputeTotals(lines []domain.BillLine, outsideGujarat bool) Totals {
	var t Totals
	for _, line := range lines {
		t.Total += line.Amount
	}
	if outsideGujarat {
		t.IGST = Round2(t.Total * IGSTRate)
	} else {
		t.CGST = Round2(t.Total * CGSTRate)
		t.SGST = Round2(t.Total * SGSTRate)
	}
	t.GrandTotal = t.Total + t.CGST + t.SGST + t.IGST
	return t
}
