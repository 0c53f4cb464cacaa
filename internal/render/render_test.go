package render_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/internal/domain"
	"billbook/internal/render"
)

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.NewRenderer(config.SellerConfig{
		Name:        "RAJESH CHEMICAL",
		Tagline:     "All Types of Industrial Chemicals",
		Address:     "Plot 12, GIDC, Bhavnagar",
		GSTNo:       "24AHUPP1093M1ZO",
		PANNo:       "AHUPP1093M",
		BankDetails: "SBI, A/c 1234567890, IFSC SBIN0000123",
		Terms:       "Goods once sold will not be taken back.",
	})
	require.NoError(t, err)
	return r
}

func intraStateBill() (*domain.Bill, *domain.Vendor) {
	vendor := &domain.Vendor{
		ID:      uuid.New(),
		Name:    "Shree Traders",
		Address: "Rajkot",
		GSTNo:   "24AAAAA0000A1Z5",
	}
	bill := &domain.Bill{
		ID:        uuid.New(),
		InvoiceNo: "42",
		VendorID:  vendor.ID,
		Date:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Lines: domain.BillLineList{
			{Name: "Acid Slurry", HSNCode: "3402", Unit: domain.UnitKg, PackingValue: 1.25, Qty: 10, Rate: 100, Amount: 1000},
		},
		Total:         1000,
		CGST:          90,
		SGST:          90,
		GrandTotal:    1180,
		AmountInWords: "One Thousand One Hundred Eighty Only",
	}
	return bill, vendor
}

func TestRenderer_HTML_IntraState(t *testing.T) {
	r := newTestRenderer(t)
	bill, vendor := intraStateBill()

	html, err := r.HTML(bill, vendor)
	require.NoError(t, err)

	assert.Contains(t, html, "RAJESH CHEMICAL")
	assert.Contains(t, html, "24AHUPP1093M1ZO")
	assert.Contains(t, html, "Shree Traders")
	assert.Contains(t, html, "Invoice 42")
	assert.Contains(t, html, "Acid Slurry")
	assert.Contains(t, html, "3402")
	// 1.25 kg renders as kg + gm split
	assert.Contains(t, html, "1 kg 250 gm")
	assert.Contains(t, html, "CGST 9%")
	assert.Contains(t, html, "SGST 9%")
	assert.NotContains(t, html, "IGST")
	assert.Contains(t, html, "One Thousand One Hundred Eighty Only")
	assert.Contains(t, html, "2025-04-01")
}

func TestRenderer_HTML_InterStateShowsIGSTOnly(t *testing.T) {
	r := newTestRenderer(t)
	bill, vendor := intraStateBill()
	bill.OutsideGujarat = true
	bill.CGST = 0
	bill.SGST = 0
	bill.IGST = 180

	html, err := r.HTML(bill, vendor)
	require.NoError(t, err)

	assert.Contains(t, html, "IGST 18%")
	assert.NotContains(t, html, "CGST")
	assert.NotContains(t, html, "SGST")
}

func TestRenderer_PDF_ProducesDocument(t *testing.T) {
	r := newTestRenderer(t)
	bill, vendor := intraStateBill()

	pdf, err := r.PDF(bill, vendor)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(pdf), 1000)
}
