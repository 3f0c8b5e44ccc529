package repository

import (
	"github.com/google/uuid"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
	"gorm.io/gorm"
)

// StoreScope returns a GORM scope that filters by store.
// A nil store ID matches nothing rather than every store.
func StoreScope(storeID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if storeID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where("store_id = ?", storeID)
	}
}

// Paginate applies LIMIT/OFFSET from validated pagination params.
func Paginate(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}
