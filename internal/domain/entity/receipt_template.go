package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptTemplate is a merchant-owned receipt template. When FilePath names
// an existing file it takes precedence over Content.
type ReceiptTemplate struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Engine    string         `gorm:"size:50" json:"engine"`
	Content   string         `gorm:"type:text" json:"content,omitempty"`
	FilePath  string         `gorm:"size:1024" json:"file_path,omitempty"`
	IsDefault bool           `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new template
func (t *ReceiptTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptTemplate model
func (ReceiptTemplate) TableName() string {
	return "receipt_templates"
}

// HasContent reports whether inline content is usable.
func (t ReceiptTemplate) HasContent() bool {
	return strings.TrimSpace(t.Content) != ""
}
