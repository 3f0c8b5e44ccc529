package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	domainRepo "github.com/wcpos/woocommerce-pos-receipts/internal/domain/repository"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new receipt template repository
func NewTemplateRepository(db *gorm.DB) domainRepo.TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	var tpl entity.ReceiptTemplate
	err := r.db.WithContext(ctx).First(&tpl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tpl, err
}

// GetDefault returns the store's default template, newest first if several are flagged.
func (r *templateRepository) GetDefault(ctx context.Context, storeID uuid.UUID) (*entity.ReceiptTemplate, error) {
	var tpl entity.ReceiptTemplate
	err := r.db.WithContext(ctx).
		Scopes(StoreScope(storeID)).
		Where("is_default = ?", true).
		Order("updated_at DESC").
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tpl, err
}

func (r *templateRepository) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.ReceiptTemplate, int64, error) {
	var templates []entity.ReceiptTemplate
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ReceiptTemplate{}).Scopes(StoreScope(storeID))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Scopes(Paginate(params)).
		Order("is_default DESC, name ASC").
		Find(&templates).Error
	return templates, total, err
}
