package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"gorm.io/gorm"
)

// Order represents a completed sale as stored by the order collaborator.
// Monetary columns are stored in cents.
type Order struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	StoreID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"store_id"`
	Number          string           `gorm:"size:100;not null;index" json:"number"`
	Status          enum.OrderStatus `gorm:"default:0" json:"status"`
	Currency        string           `gorm:"size:3" json:"currency"`
	TaxType         enum.TaxType     `gorm:"default:0" json:"tax_type"`
	SubTotal        int64            `gorm:"default:0" json:"-"`
	TaxTotal        int64            `gorm:"default:0" json:"-"`
	ShippingTotal   int64            `gorm:"default:0" json:"-"`
	FeeTotal        int64            `gorm:"default:0" json:"-"`
	DiscountTotal   int64            `gorm:"default:0" json:"-"`
	Total           int64            `gorm:"default:0" json:"-"`
	Paid            int64            `gorm:"default:0" json:"-"`
	Due             int64            `gorm:"default:0" json:"-"`
	FiscalQRPayload string           `gorm:"type:text" json:"fiscal_qr_payload,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Details []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal      decimal.Decimal `json:"sub_total"`
		TaxTotal      decimal.Decimal `json:"tax_total"`
		ShippingTotal decimal.Decimal `json:"shipping_total"`
		FeeTotal      decimal.Decimal `json:"fee_total"`
		DiscountTotal decimal.Decimal `json:"discount_total"`
		Total         decimal.Decimal `json:"total"`
		Paid          decimal.Decimal `json:"paid"`
		Due           decimal.Decimal `json:"due"`
	}{
		Alias:         Alias(o),
		SubTotal:      money.FromCents(o.SubTotal),
		TaxTotal:      money.FromCents(o.TaxTotal),
		ShippingTotal: money.FromCents(o.ShippingTotal),
		FeeTotal:      money.FromCents(o.FeeTotal),
		DiscountTotal: money.FromCents(o.DiscountTotal),
		Total:         money.FromCents(o.Total),
		Paid:          money.FromCents(o.Paid),
		Due:           money.FromCents(o.Due),
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the grand total as a decimal
func (o *Order) GetTotalDecimal() decimal.Decimal {
	return money.FromCents(o.Total)
}

// OrderDetail represents a line item in an order
type OrderDetail struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Position  int             `gorm:"default:0" json:"position"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	SKU       string          `gorm:"size:100" json:"sku,omitempty"`
	Quantity  decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"quantity"`
	Total     int64           `gorm:"not null" json:"-"` // line total before tax, in cents
	Tax       int64           `gorm:"default:0" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (od OrderDetail) MarshalJSON() ([]byte, error) {
	type Alias OrderDetail
	return json.Marshal(&struct {
		Alias
		Total decimal.Decimal `json:"total"`
		Tax   decimal.Decimal `json:"tax"`
	}{
		Alias: Alias(od),
		Total: money.FromCents(od.Total),
		Tax:   money.FromCents(od.Tax),
	})
}

// BeforeCreate generates a UUID before creating a new order detail
func (od *OrderDetail) BeforeCreate(tx *gorm.DB) error {
	if od.ID == uuid.Nil {
		od.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderDetail model
func (OrderDetail) TableName() string {
	return "order_details"
}
