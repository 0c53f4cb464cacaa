package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"billbook/internal/domain"
)

// PDF renders the invoice as an A4 PDF document.
func (r *Renderer) PDF(bill *domain.Bill, vendor *domain.Vendor) ([]byte, error) {
	view := r.buildView(bill, vendor)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 9, r.seller.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 4, r.seller.Tagline, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, r.seller.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4, fmt.Sprintf("GST NO: %s   PAN NO: %s", r.seller.GSTNo, r.seller.PANNo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Buyer block
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 5, "Bill to: "+vendor.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, vendor.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Mobile no.: "+vendor.Phone, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("GST NO: %s   PAN NO: %s", vendor.GSTNo, vendor.PANNo), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.CellFormat(0, 5, fmt.Sprintf("INVOICE NO: %s   DATE: %s   TRANSPORT: %s   VEHICLE: %s   LR: %s",
		bill.InvoiceNo, view.Date, bill.TransportName, bill.VehicleNo, bill.LRNo), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Line-item table
	colWidths := []float64{10, 56, 22, 14, 32, 24, 28}
	headers := []string{"Sr.", "Item Description", "HSN", "Qty.", "Packing", "Rate", "Amount"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, l := range view.Lines {
		pdf.CellFormat(colWidths[0], 6, fmt.Sprintf("%d", l.Sr), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, l.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, l.HSNCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%d", l.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, l.Packing, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[5], 6, fmt.Sprintf("%.2f", l.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[6], 6, fmt.Sprintf("%.2f", l.Amount), "1", 1, "R", false, 0, "")
	}

	// Totals block
	labelWidth := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3] + colWidths[4] + colWidths[5]
	for _, row := range view.TaxRows {
		if row.Bold {
			pdf.SetFont("Arial", "B", 9)
		} else {
			pdf.SetFont("Arial", "", 9)
		}
		pdf.CellFormat(labelWidth, 6, row.Label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[6], 6, fmt.Sprintf("%.2f", row.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 9)
	pdf.MultiCell(0, 5, "RUPEES IN WORDS : "+bill.AmountInWords, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 8)
	if r.seller.BankDetails != "" {
		pdf.MultiCell(0, 4, "BANK DETAILS:\n"+r.seller.BankDetails, "", "L", false)
		pdf.Ln(2)
	}
	if r.seller.Terms != "" {
		pdf.MultiCell(0, 4, "TERMS & CONDITIONS:\n"+r.seller.Terms, "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "FOR, "+r.seller.Name, "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, "(Authorised Signatory)", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing invoice PDF %s: %w", bill.InvoiceNo, err)
	}
	return buf.Bytes(), nil
}
