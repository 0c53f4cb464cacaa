package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"billbook/internal/billing"
	"billbook/internal/domain"
	"billbook/internal/export"
	"billbook/internal/port"
	"billbook/internal/render"
)

// BillLineInput is one candidate line of a bill. Rate defaults to the
// packing's rate when omitted; amount is always computed server-side.
type BillLineInput struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	PackingValue float64   `json:"packing_value" binding:"required"`
	Qty          int       `json:"qty" binding:"required"`
	Rate         *float64  `json:"rate"`
	Discount     float64   `json:"discount"`
}

// CreateBillInput is the DTO for bill creation. Derived fields (amounts,
// totals, words, invoice number) are never accepted from the client.
type CreateBillInput struct {
	VendorID       uuid.UUID       `json:"vendor_id" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	TransportName  string          `json:"transport_name"`
	VehicleNo      string          `json:"vehicle_no"`
	LRNo           string          `json:"lr_no"`
	OutsideGujarat bool            `json:"outside_gujarat"`
	Lines          []BillLineInput `json:"lines" binding:"required,min=1,dive"`
}

// EmailBillInput is the DTO for mailing an invoice.
type EmailBillInput struct {
	To string `json:"to" binding:"required,email"`
}

// BillService defines the bill lifecycle contract: creation with server-side
// computation, retrieval, rendering, delivery and export.
type BillService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateBillInput) (*domain.Bill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, offset, limit int) ([]domain.Bill, int, error)
	RenderHTML(ctx context.Context, id uuid.UUID) (string, error)
	RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
	Email(ctx context.Context, id uuid.UUID, input EmailBillInput) error
	Export(ctx context.Context, format domain.ExportFormat) ([]byte, error)
}

type billService struct {
	bills    port.BillRepository
	vendors  port.VendorRepository
	products port.ProductRepository
	seq      port.InvoiceSequence
	renderer *render.Renderer
	email    port.EmailSender
	archive  port.ObjectStorage // nil when archiving is disabled
}

// NewBillService creates a new BillService implementation. archive may be
// nil, in which case rendered PDFs are not archived.
func NewBillService(
	bills port.BillRepository,
	vendors port.VendorRepository,
	products port.ProductRepository,
	seq port.InvoiceSequence,
	renderer *render.Renderer,
	email port.EmailSender,
	archive port.ObjectStorage,
) BillService {
	return &billService{
		bills:    bills,
		vendors:  vendors,
		products: products,
		seq:      seq,
		renderer: renderer,
		email:    email,
		archive:  archive,
	}
}

// buildLines validates each candidate line against the product catalogue and
// computes its amount. The packing must belong to the product's packing set;
// an unknown product stops the whole bill.
func (s *billService) buildLines(ctx context.Context, inputs []BillLineInput) (domain.BillLineList, error) {
	lines := make(domain.BillLineList, 0, len(inputs))
	for i, in := range inputs {
		product, err := s.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if in.Qty < 1 {
			return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrInvalidQuantity)
		}
		if in.Discount < 0 {
			return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrNegativeDiscount)
		}
		if !product.Packings.Contains(in.PackingValue) {
			return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrInvalidPacking)
		}

		rate := product.Rate
		if in.Rate != nil {
			rate = *in.Rate
		}
		if rate < 0 {
			return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrNegativeRate)
		}

		lines = append(lines, domain.BillLine{
			ProductID:    product.ID,
			Name:         product.Name,
			HSNCode:      product.HSNCode,
			Unit:         product.Unit,
			PackingValue: in.PackingValue,
			Qty:          in.Qty,
			Rate:         rate,
			Discount:     in.Discount,
			Amount:       billing.LineAmount(in.Qty, in.PackingValue, rate, in.Discount),
		})
	}
	return lines, nil
}

func (s *billService) Create(ctx context.Context, createdBy uuid.UUID, input CreateBillInput) (*domain.Bill, error) {
	if len(input.Lines) == 0 {
		return nil, domain.ErrNoBillLines
	}

	vendor, err := s.vendors.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}

	lines, err := s.buildLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	totals := billing.ComputeTotals(lines, input.OutsideGujarat)

	invoiceNo, err := s.seq.NextInvoiceNo(ctx)
	if err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		InvoiceNo:      invoiceNo,
		VendorID:       vendor.ID,
		Date:           input.Date,
		TransportName:  input.TransportName,
		VehicleNo:      input.VehicleNo,
		LRNo:           input.LRNo,
		OutsideGujarat: input.OutsideGujarat,
		Lines:          lines,
		Total:          totals.Total,
		CGST:           totals.CGST,
		SGST:           totals.SGST,
		IGST:           totals.IGST,
		GrandTotal:     totals.GrandTotal,
		AmountInWords:  billing.AmountInWords(totals.GrandTotal),
		CreatedBy:      createdBy,
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *billService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *billService) List(ctx context.Context, offset, limit int) ([]domain.Bill, int, error) {
	return s.bills.List(ctx, offset, limit)
}

func (s *billService) billWithVendor(ctx context.Context, id uuid.UUID) (*domain.Bill, *domain.Vendor, error) {
	bill, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	vendor, err := s.vendors.GetByID(ctx, bill.VendorID)
	if err != nil {
		return nil, nil, err
	}
	return bill, vendor, nil
}

func (s *billService) RenderHTML(ctx context.Context, id uuid.UUID) (string, error) {
	bill, vendor, err := s.billWithVendor(ctx, id)
	if err != nil {
		return "", err
	}
	return s.renderer.HTML(bill, vendor)
}

func (s *billService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	bill, vendor, err := s.billWithVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := s.renderer.PDF(bill, vendor)
	if err != nil {
		return nil, err
	}

	if s.archive != nil {
		key := fmt.Sprintf("invoices/invoice_%s.pdf", bill.InvoiceNo)
		if _, err := s.archive.Upload(ctx, key, "application/pdf", bytes.NewReader(pdf)); err != nil {
			// Archiving is best effort; the download must still succeed.
			log.Printf("archiving invoice %s failed: %v", bill.InvoiceNo, err)
		}
	}
	return pdf, nil
}

func (s *billService) Email(ctx context.Context, id uuid.UUID, input EmailBillInput) error {
	if s.email == nil {
		return domain.ErrEmailNotConfigured
	}

	bill, vendor, err := s.billWithVendor(ctx, id)
	if err != nil {
		return err
	}

	html, err := s.renderer.HTML(bill, vendor)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Invoice %s dated %s", bill.InvoiceNo, bill.Date.Format("2006-01-02"))
	return s.email.SendInvoice(ctx, input.To, subject, html)
}

func (s *billService) Export(ctx context.Context, format domain.ExportFormat) ([]byte, error) {
	bills, err := s.bills.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case domain.ExportCSV:
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, bills); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return export.WriteXLSX(bills)
	}
}
