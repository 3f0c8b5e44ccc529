package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	domainRepo "github.com/wcpos/woocommerce-pos-receipts/internal/domain/repository"
	"gorm.io/gorm"
)

// SnapshotRepository persists fiscal payloads in the fiscal_snapshots table.
type SnapshotRepository struct {
	db *gorm.DB
}

var _ domainRepo.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new fiscal snapshot repository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Lookup(ctx context.Context, orderID uuid.UUID) (*entity.ReceiptPayload, error) {
	var snap entity.FiscalSnapshot
	err := r.db.WithContext(ctx).First(&snap, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap.Payload, nil
}
