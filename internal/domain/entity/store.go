package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"gorm.io/gorm"
)

// Store represents a merchant location whose receipts are rendered
type Store struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Settings  StoreSettings  `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}

// StoreSettings holds the receipt-related configuration of a store
type StoreSettings struct {
	// Receipt header
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`

	// Localization
	Currency          string `json:"currency,omitempty"`
	PriceDecimals     *int   `json:"price_decimals,omitempty"`
	ThousandSeparator string `json:"thousand_separator,omitempty"`
	DecimalSeparator  string `json:"decimal_separator,omitempty"`

	// Receipt rendering
	ReceiptEngine     string     `json:"receipt_engine,omitempty"`
	ReceiptTemplateID *uuid.UUID `json:"receipt_template_id,omitempty"`
	ReceiptMode       string     `json:"receipt_mode,omitempty"`
}

// Formatter returns the money formatter configured for the store. Unset
// fields fall back to two decimals, "," and ".".
func (ss StoreSettings) Formatter() money.Formatter {
	decimals := money.DefaultDecimals
	if ss.PriceDecimals != nil {
		decimals = *ss.PriceDecimals
	}
	thousand := ss.ThousandSeparator
	if thousand == "" {
		thousand = money.DefaultThousandSeparator
	}
	return money.NewFormatter(decimals, thousand, ss.DecimalSeparator)
}

// Scan implements the sql.Scanner interface for StoreSettings
func (ss *StoreSettings) Scan(value interface{}) error {
	if value == nil {
		*ss = StoreSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StoreSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver.Valuer interface for StoreSettings
func (ss StoreSettings) Value() (driver.Value, error) {
	return json.Marshal(ss)
}

// DefaultStoreSettings returns default settings for new stores
func DefaultStoreSettings() StoreSettings {
	decimals := money.DefaultDecimals
	return StoreSettings{
		Currency:          "USD",
		PriceDecimals:     &decimals,
		ThousandSeparator: money.DefaultThousandSeparator,
		DecimalSeparator:  money.DefaultDecimalSeparator,
		ReceiptEngine:     "logicless",
		ReceiptMode:       "live",
	}
}
