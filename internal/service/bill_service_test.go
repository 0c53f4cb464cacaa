package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/internal/domain"
	"billbook/internal/render"
	"billbook/internal/service"
	"billbook/mocks"
)

type billFixture struct {
	bills    *mocks.MockBillRepo
	vendors  *mocks.MockVendorRepo
	products *mocks.MockProductRepo
	seq      *mocks.MockInvoiceSeq
	email    *mocks.MockEmailSender
	svc      service.BillService
}

func newBillFixture(t *testing.T) *billFixture {
	t.Helper()
	renderer, err := render.NewRenderer(config.SellerConfig{
		Name:    "RAJESH CHEMICAL",
		Address: "Bhavnagar",
		GSTNo:   "24AHUPP1093M1ZO",
		PANNo:   "AHUPP1093M",
	})
	require.NoError(t, err)

	f := &billFixture{
		bills:    new(mocks.MockBillRepo),
		vendors:  new(mocks.MockVendorRepo),
		products: new(mocks.MockProductRepo),
		seq:      new(mocks.MockInvoiceSeq),
		email:    new(mocks.MockEmailSender),
	}
	f.svc = service.NewBillService(f.bills, f.vendors, f.products, f.seq, renderer, f.email, nil)
	return f
}

func testVendor() *domain.Vendor {
	return &domain.Vendor{
		ID:      uuid.New(),
		Name:    "Shree Traders",
		Address: "Rajkot",
		GSTNo:   "24AAAAA0000A1Z5",
	}
}

func testProduct() *domain.Product {
	return &domain.Product{
		ID:       uuid.New(),
		Name:     "Acid Slurry",
		HSNCode:  "3402",
		Unit:     domain.UnitKg,
		Rate:     100,
		Packings: domain.PackingList{{Value: 1, Rate: 100}, {Value: 5, Rate: 480}},
	}
}

func billInput(vendorID uuid.UUID, lines ...service.BillLineInput) service.CreateBillInput {
	return service.CreateBillInput{
		VendorID: vendorID,
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Lines:    lines,
	}
}

func TestBillService_Create_ComputesTotalsAndWords(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	f.seq.On("NextInvoiceNo", mock.Anything).Return("1", nil)
	f.bills.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	// 10 x 1kg @ 100 = 1000; intra-state: 9% + 9% GST.
	bill, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, service.BillLineInput{
		ProductID:    product.ID,
		PackingValue: 1,
		Qty:          10,
	}))

	require.NoError(t, err)
	assert.Equal(t, "1", bill.InvoiceNo)
	assert.Equal(t, 1000.0, bill.Total)
	assert.Equal(t, 90.0, bill.CGST)
	assert.Equal(t, 90.0, bill.SGST)
	assert.Equal(t, 0.0, bill.IGST)
	assert.Equal(t, 1180.0, bill.GrandTotal)
	assert.Equal(t, "One Thousand One Hundred Eighty Only", bill.AmountInWords)
	require.Len(t, bill.Lines, 1)
	assert.Equal(t, 1000.0, bill.Lines[0].Amount)
	assert.Equal(t, 100.0, bill.Lines[0].Rate)
	f.bills.AssertExpectations(t)
}

func TestBillService_Create_InterStateUsesIGST(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	f.seq.On("NextInvoiceNo", mock.Anything).Return("7", nil)
	f.bills.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	input := billInput(vendor.ID, service.BillLineInput{
		ProductID:    product.ID,
		PackingValue: 1,
		Qty:          10,
	})
	input.OutsideGujarat = true

	bill, err := f.svc.Create(context.Background(), uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, 0.0, bill.CGST)
	assert.Equal(t, 0.0, bill.SGST)
	assert.Equal(t, 180.0, bill.IGST)
	assert.Equal(t, 1180.0, bill.GrandTotal)
}

func TestBillService_Create_SequentialInvoiceNumbers(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	f.seq.On("NextInvoiceNo", mock.Anything).Return("1", nil).Once()
	f.seq.On("NextInvoiceNo", mock.Anything).Return("2", nil).Once()
	f.bills.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	line := service.BillLineInput{ProductID: product.ID, PackingValue: 1, Qty: 1}

	first, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, line))
	require.NoError(t, err)
	second, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, line))
	require.NoError(t, err)

	assert.Equal(t, "1", first.InvoiceNo)
	assert.Equal(t, "2", second.InvoiceNo)
	f.seq.AssertExpectations(t)
}

func TestBillService_Create_LineRateOverridesProductRate(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	f.seq.On("NextInvoiceNo", mock.Anything).Return("1", nil)
	f.bills.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	rate := 150.0
	bill, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, service.BillLineInput{
		ProductID:    product.ID,
		PackingValue: 1,
		Qty:          2,
		Rate:         &rate,
		Discount:     10,
	}))

	require.NoError(t, err)
	assert.Equal(t, 150.0, bill.Lines[0].Rate)
	// 2 * 1 * 150 - 10 = 290
	assert.Equal(t, 290.0, bill.Lines[0].Amount)
}

func TestBillService_Create_VendorNotFound(t *testing.T) {
	f := newBillFixture(t)
	vendorID := uuid.New()

	f.vendors.On("GetByID", mock.Anything, vendorID).Return(nil, domain.ErrVendorNotFound)

	bill, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendorID, service.BillLineInput{
		ProductID:    uuid.New(),
		PackingValue: 1,
		Qty:          1,
	}))

	assert.Nil(t, bill)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestBillService_Create_UnknownProductStopsBill(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	productID := uuid.New()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, productID).Return(nil, domain.ErrProductNotFound)

	bill, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, service.BillLineInput{
		ProductID:    productID,
		PackingValue: 1,
		Qty:          1,
	}))

	assert.Nil(t, bill)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	f.bills.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBillService_Create_PackingMustBelongToProduct(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	bill, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, service.BillLineInput{
		ProductID:    product.ID,
		PackingValue: 25, // not in the product's packing set
		Qty:          1,
	}))

	assert.Nil(t, bill)
	assert.ErrorIs(t, err, domain.ErrInvalidPacking)
}

func TestBillService_Create_RejectsZeroQuantity(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	_, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, service.BillLineInput{
		ProductID:    product.ID,
		PackingValue: 1,
		Qty:          0,
	}))

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestBillService_Create_RejectsNegativeDiscount(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	product := testProduct()

	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	_, err := f.svc.Create(context.Background(), uuid.New(), billInput(vendor.ID, service.BillLineInput{
		ProductID:    product.ID,
		PackingValue: 1,
		Qty:          1,
		Discount:     -5,
	}))

	assert.ErrorIs(t, err, domain.ErrNegativeDiscount)
}

func TestBillService_Create_NoLines(t *testing.T) {
	f := newBillFixture(t)

	_, err := f.svc.Create(context.Background(), uuid.New(), billInput(uuid.New()))

	assert.ErrorIs(t, err, domain.ErrNoBillLines)
}

func TestBillService_RenderHTML_ContainsInvoiceFields(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	bill := &domain.Bill{
		ID:            uuid.New(),
		InvoiceNo:     "42",
		VendorID:      vendor.ID,
		Date:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Lines:         domain.BillLineList{{Name: "Acid Slurry", HSNCode: "3402", Unit: domain.UnitKg, PackingValue: 1, Qty: 10, Rate: 100, Amount: 1000}},
		Total:         1000,
		CGST:          90,
		SGST:          90,
		GrandTotal:    1180,
		AmountInWords: "One Thousand One Hundred Eighty Only",
	}

	f.bills.On("GetByID", mock.Anything, bill.ID).Return(bill, nil)
	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)

	html, err := f.svc.RenderHTML(context.Background(), bill.ID)

	require.NoError(t, err)
	assert.Contains(t, html, "42")
	assert.Contains(t, html, "Shree Traders")
	assert.Contains(t, html, "Acid Slurry")
	assert.Contains(t, html, "One Thousand One Hundred Eighty Only")
	assert.Contains(t, html, "RAJESH CHEMICAL")
}

func TestBillService_Email_SendsRenderedInvoice(t *testing.T) {
	f := newBillFixture(t)
	vendor := testVendor()
	bill := &domain.Bill{
		ID:            uuid.New(),
		InvoiceNo:     "42",
		VendorID:      vendor.ID,
		Date:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Lines:         domain.BillLineList{{Name: "Acid Slurry", Unit: domain.UnitKg, PackingValue: 1, Qty: 1, Rate: 100, Amount: 100}},
		GrandTotal:    118,
		AmountInWords: "One Hundred Eighteen Only",
	}

	f.bills.On("GetByID", mock.Anything, bill.ID).Return(bill, nil)
	f.vendors.On("GetByID", mock.Anything, vendor.ID).Return(vendor, nil)
	f.email.On("SendInvoice", mock.Anything, "buyer@example.com", "Invoice 42 dated 2025-04-01", mock.AnythingOfType("string")).Return(nil)

	err := f.svc.Email(context.Background(), bill.ID, service.EmailBillInput{To: "buyer@example.com"})

	assert.NoError(t, err)
	f.email.AssertExpectations(t)
}

func TestBillService_Email_BillNotFound(t *testing.T) {
	f := newBillFixture(t)
	billID := uuid.New()

	f.bills.On("GetByID", mock.Anything, billID).Return(nil, domain.ErrBillNotFound)

	err := f.svc.Email(context.Background(), billID, service.EmailBillInput{To: "buyer@example.com"})

	assert.ErrorIs(t, err, domain.ErrBillNotFound)
	f.email.AssertNotCalled(t, "SendInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBillService_Export_CSVStartsWithBOM(t *testing.T) {
	f := newBillFixture(t)

	f.bills.On("ListAll", mock.Anything).Return([]domain.Bill{}, nil)

	data, err := f.svc.Export(context.Background(), domain.ExportCSV)

	require.NoError(t, err)
	assert.True(t, len(data) >= 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}
