package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/export"
)

func sampleBills() []domain.Bill {
	return []domain.Bill{
		{
			ID:             uuid.New(),
			InvoiceNo:      "1",
			VendorID:       uuid.New(),
			Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			TransportName:  "Gujarat Roadways",
			VehicleNo:      "GJ-04-AB-1234",
			OutsideGujarat: false,
			Lines:          domain.BillLineList{{Name: "Acid Slurry", Qty: 10, Rate: 100, Amount: 1000}},
			Total:          1000,
			CGST:           90,
			SGST:           90,
			GrandTotal:     1180,
			AmountInWords:  "One Thousand One Hundred Eighty Only",
			CreatedAt:      time.Date(2025, 4, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			InvoiceNo:      "2",
			VendorID:       uuid.New(),
			Date:           time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			OutsideGujarat: true,
			Lines:          domain.BillLineList{{Name: "Caustic Soda", Qty: 5, Rate: 50, Amount: 250}},
			Total:          250,
			IGST:           45,
			GrandTotal:     295,
			AmountInWords:  "Two Hundred Ninety Five Only",
			CreatedAt:      time.Date(2025, 4, 2, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleBills()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, export.BOM))

	records, err := csv.NewReader(bytes.NewReader(data[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "Invoice No", header[0])
	assert.Equal(t, "Grand Total", header[12])

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "2025-04-01", first[1])
	assert.Equal(t, "Gujarat Roadways", first[3])
	assert.Equal(t, "false", first[6])
	assert.Equal(t, "1000.00", first[8])
	assert.Equal(t, "90.00", first[9])
	assert.Equal(t, "1180.00", first[12])
	assert.Equal(t, "One Thousand One Hundred Eighty Only", first[13])

	second := records[2]
	assert.Equal(t, "true", second[6])
	assert.Equal(t, "45.00", second[11])
}

func TestWriteCSV_EmptyRegister(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
