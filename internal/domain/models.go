package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the billing application.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Vendor is a party bills are raised against.
type Vendor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	GSTNo     string    `db:"gst_no" json:"gst_no"`
	PANNo     string    `db:"pan_no" json:"pan_no"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Packing is a sellable quantity unit of a product with its own rate.
// The value encodes whole and sub units together: 1.250 kg = 1 kg 250 gm.
type Packing struct {
	Value float64 `json:"value"`
	Rate  float64 `json:"rate"`
}

// PackingList is the ordered set of packings offered for a product,
// persisted as a JSONB column.
type PackingList []Packing

// Value implements driver.Valuer for JSONB storage.
func (p PackingList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling packing list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB storage.
func (p *PackingList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for PackingList: %T", src)
	}
}

// Contains reports whether the list offers a packing with the given value.
func (p PackingList) Contains(value float64) bool {
	for _, pk := range p {
		if pk.Value == value {
			return true
		}
	}
	return false
}

// Product is a sellable item with a default rate and its packing options.
type Product struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	HSNCode   string      `db:"hsn_code" json:"hsn_code"`
	Unit      Unit        `db:"unit" json:"unit"`
	Rate      float64     `db:"rate" json:"rate"`
	Packings  PackingList `db:"packings" json:"packings"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// BillLine is one line of a bill. Product name, HSN code and unit are
// copied from the product at creation time so the persisted bill never
// drifts when the product catalogue changes.
type BillLine struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	HSNCode      string    `json:"hsn_code"`
	Unit         Unit      `json:"unit"`
	PackingValue float64   `json:"packing_value"`
	Qty          int       `json:"qty"`
	Rate         float64   `json:"rate"`
	Discount     float64   `json:"discount"`
	Amount       float64   `json:"amount"`
}

// BillLineList is the ordered set of lines on a bill, persisted as JSONB.
type BillLineList []BillLine

// Value implements driver.Valuer for JSONB storage.
func (l BillLineList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshaling bill lines: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB storage.
func (l *BillLineList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for BillLineList: %T", src)
	}
}

// Bill is an immutable invoice snapshot. All derived fields (line amounts,
// totals, amount in words, invoice number) are computed server-side at
// creation and never recomputed afterwards.
type Bill struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	InvoiceNo      string       `db:"invoice_no" json:"invoice_no"`
	VendorID       uuid.UUID    `db:"vendor_id" json:"vendor_id"`
	Date           time.Time    `db:"date" json:"date"`
	TransportName  string       `db:"transport_name" json:"transport_name"`
	VehicleNo      string       `db:"vehicle_no" json:"vehicle_no"`
	LRNo           string       `db:"lr_no" json:"lr_no"`
	OutsideGujarat bool         `db:"outside_gujarat" json:"outside_gujarat"`
	Lines          BillLineList `db:"lines" json:"lines"`
	Total          float64      `db:"total" json:"total"`
	CGST           float64      `db:"cgst" json:"cgst"`
	SGST           float64      `db:"sgst" json:"sgst"`
	IGST           float64      `db:"igst" json:"igst"`
	GrandTotal     float64      `db:"grand_total" json:"grand_total"`
	AmountInWords  string       `db:"amount_in_words" json:"amount_in_words"`
	CreatedBy      uuid.UUID    `db:"created_by" json:"created_by"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}
