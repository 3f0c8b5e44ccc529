package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
)

// SnapshotRepository looks up the fiscal payload captured at sale time.
// Lookup returns (nil, nil) when no snapshot exists for the order.
type SnapshotRepository interface {
	Lookup(ctx context.Context, orderID uuid.UUID) (*entity.ReceiptPayload, error)
}
