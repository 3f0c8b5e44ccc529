package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
)

// TemplateRepository defines read access to receipt templates
type TemplateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error)
	GetDefault(ctx context.Context, storeID uuid.UUID) (*entity.ReceiptTemplate, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.ReceiptTemplate, int64, error)
}
