package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
)

// StoreRepository defines read access to stores and their settings
type StoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
}
