// Package export serializes the bill register as CSV or XLSX for
// bookkeeping and tax filing.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"billbook/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row.
var columns = []string{
	"Invoice No",
	"Date",
	"Vendor ID",
	"Transport Name",
	"Vehicle No",
	"LR No",
	"Outside Gujarat",
	"Line Count",
	"Total",
	"CGST",
	"SGST",
	"IGST",
	"Grand Total",
	"Amount In Words",
	"Created At",
}

// Writer wraps csv.Writer for exporting bills as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteBills converts a batch of bills to CSV rows and writes them.
func (w *Writer) WriteBills(bills []domain.Bill) error {
	for i := range bills {
		if err := w.csv.Write(billToRow(&bills[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func billToRow(b *domain.Bill) []string {
	return []string{
		b.InvoiceNo,
		b.Date.Format("2006-01-02"),
		b.VendorID.String(),
		b.TransportName,
		b.VehicleNo,
		b.LRNo,
		strconv.FormatBool(b.OutsideGujarat),
		strconv.Itoa(len(b.Lines)),
		fmt.Sprintf("%.2f", b.Total),
		fmt.Sprintf("%.2f", b.CGST),
		fmt.Sprintf("%.2f", b.SGST),
		fmt.Sprintf("%.2f", b.IGST),
		fmt.Sprintf("%.2f", b.GrandTotal),
		b.AmountInWords,
		b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// WriteCSV writes the full bill register as CSV with a BOM prefix.
func WriteCSV(out io.Writer, bills []domain.Bill) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteBills(bills); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
