package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
)

// OrderRepository defines read access to orders owned by the order collaborator.
// Getters return (nil, nil) when the order does not exist.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByNumber(ctx context.Context, storeID uuid.UUID, number string) (*entity.Order, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}
