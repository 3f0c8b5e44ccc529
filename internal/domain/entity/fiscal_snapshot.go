package entity

import (
	"time"

	"github.com/google/uuid"
)

// FiscalSnapshot is the payload captured when an order was presented and
// taxed. It is written by the order collaborator and only read here.
type FiscalSnapshot struct {
	OrderID    uuid.UUID      `gorm:"type:uuid;primary_key" json:"order_id"`
	Payload    ReceiptPayload `gorm:"type:jsonb;serializer:json" json:"payload"`
	CapturedAt time.Time      `json:"captured_at"`
}

// TableName returns the table name for the FiscalSnapshot model
func (FiscalSnapshot) TableName() string {
	return "fiscal_snapshots"
}
