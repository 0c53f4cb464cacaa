// Package render produces printable invoice documents (HTML and PDF) from
// a persisted bill and its vendor.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"billbook/internal/billing"
	"billbook/internal/config"
	"billbook/internal/domain"
)

// Renderer renders bills against the configured seller letterhead.
type Renderer struct {
	seller config.SellerConfig
	tmpl   *template.Template
}

// NewRenderer creates a Renderer for the given seller.
func NewRenderer(seller config.SellerConfig) (*Renderer, error) {
	tmpl, err := template.New("invoice").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"inc":   func(i int) int { return i + 1 },
	}).Parse(invoiceHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing invoice template: %w", err)
	}
	return &Renderer{seller: seller, tmpl: tmpl}, nil
}

type lineView struct {
	Sr      int
	Name    string
	HSNCode string
	Qty     int
	Packing string
	Unit    string
	Rate    float64
	Amount  float64
}

type invoiceView struct {
	Seller  config.SellerConfig
	Vendor  *domain.Vendor
	Bill    *domain.Bill
	Date    string
	Lines   []lineView
	TaxRows []taxRow
}

type taxRow struct {
	Label  string
	Amount float64
	Bold   bool
}

func (r *Renderer) buildView(bill *domain.Bill, vendor *domain.Vendor) invoiceView {
	lines := make([]lineView, 0, len(bill.Lines))
	for i, l := range bill.Lines {
		lines = append(lines, lineView{
			Sr:      i + 1,
			Name:    l.Name,
			HSNCode: l.HSNCode,
			Qty:     l.Qty,
			Packing: billing.FormatPacking(l.PackingValue, l.Unit).String(),
			Unit:    string(l.Unit),
			Rate:    l.Rate,
			Amount:  l.Amount,
		})
	}

	rows := []taxRow{{Label: "TOTAL", Amount: bill.Total, Bold: true}}
	if bill.OutsideGujarat {
		rows = append(rows, taxRow{Label: "IGST 18%", Amount: bill.IGST})
	} else {
		rows = append(rows,
			taxRow{Label: "CGST 9%", Amount: bill.CGST},
			taxRow{Label: "SGST 9%", Amount: bill.SGST})
	}
	rows = append(rows, taxRow{Label: "GRAND TOTAL", Amount: bill.GrandTotal, Bold: true})

	return invoiceView{
		Seller:  r.seller,
		Vendor:  vendor,
		Bill:    bill,
		Date:    bill.Date.Format("2006-01-02"),
		Lines:   lines,
		TaxRows: rows,
	}
}

// HTML renders the printable invoice page.
func (r *Renderer) HTML(bill *domain.Bill, vendor *domain.Vendor) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.buildView(bill, vendor)); err != nil {
		return "", fmt.Errorf("rendering invoice %s: %w", bill.InvoiceNo, err)
	}
	return buf.String(), nil
}

const invoiceHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Invoice {{.Bill.InvoiceNo}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 0; background: #fff; }
    .bill-container { max-width: 900px; margin: 0 auto; background: #fff; padding: 32px; }
    h1 { text-align: center; margin-bottom: 0; }
    .header, .footer { text-align: center; }
    .section { margin-bottom: 16px; }
    table { width: 100%; border-collapse: collapse; margin-top: 12px; }
    th, td { border: 1px solid #222; padding: 6px 8px; font-size: 14px; }
    th { background: #f0f0f0; }
    .totals td { font-weight: bold; }
    .right { text-align: right; }
    .center { text-align: center; }
  </style>
</head>
<body>
  <div class="bill-container">
    <div class="header">
      <h1>{{.Seller.Name}}</h1>
      <div>{{.Seller.Tagline}}</div>
      <div>{{.Seller.Address}}</div>
      <div>GST NO: {{.Seller.GSTNo}} &nbsp; PAN NO: {{.Seller.PANNo}}</div>
    </div>
    <hr />
    <div class="section">
      <div><b>Bill to:</b> {{.Vendor.Name}}</div>
      <div>{{.Vendor.Address}}</div>
      <div>Mobile no.: {{.Vendor.Phone}}</div>
    </div>
    <div class="section">
      <table>
        <tr>
          <td>GST NO: {{.Vendor.GSTNo}}</td>
          <td>PAN NO: {{.Vendor.PANNo}}</td>
          <td>INVOICE NO: {{.Bill.InvoiceNo}}</td>
          <td>DATE: {{.Date}}</td>
          <td>TRANSPORT NAME: {{.Bill.TransportName}}</td>
        </tr>
      </table>
    </div>
    <table>
      <thead>
        <tr>
          <th>Sr.</th>
          <th>Item Description</th>
          <th>HSN CODE</th>
          <th>Qty.</th>
          <th>Packing</th>
          <th>Rate</th>
          <th>Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td class="center">{{.Sr}}</td>
          <td>{{.Name}}</td>
          <td class="center">{{.HSNCode}}</td>
          <td class="center">{{.Qty}}</td>
          <td class="center">{{.Packing}}</td>
          <td class="right">{{money .Rate}}</td>
          <td class="right">{{money .Amount}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <table>
      {{range .TaxRows}}
      <tr{{if .Bold}} class="totals"{{end}}><td colspan="6" class="right">{{.Label}}</td><td class="right">{{money .Amount}}</td></tr>
      {{end}}
    </table>
    <div class="section"><b>RUPEES IN WORDS :</b> {{.Bill.AmountInWords}}</div>
    {{if .Seller.BankDetails}}
    <div class="section">
      <b>BANK DETAILS:</b><br />
      <pre style="font-size:13px;">{{.Seller.BankDetails}}</pre>
    </div>
    {{end}}
    {{if .Seller.Terms}}
    <div class="section">
      <b>TERMS &amp; CONDITIONS:</b><br />
      <pre style="font-size:13px;">{{.Seller.Terms}}</pre>
    </div>
    {{end}}
    <div class="footer">
      <b>FOR, {{.Seller.Name}}</b><br />
      <span style="font-size:12px;">(Authorised Signatory)</span>
    </div>
  </div>
</body>
</html>
`
