package database

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/config"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultStoreSlug identifies the store created on first boot.
const DefaultStoreSlug = "default"

// DefaultTemplateContent is the logic-less template seeded for new stores.
const DefaultTemplateContent = `<div class="wcpos-receipt">
<h1>{{ store.name }}</h1>
<p>{{ store.address }}</p>
<p>Order #{{ meta.order_number }} &middot; {{ meta.created_at }}</p>
<p>Subtotal {{ totals.subtotal_incl }}</p>
<p>Tax {{ totals.tax_total }}</p>
<p><strong>Total {{ totals.grand_total_incl }} {{ meta.currency }}</strong></p>
<p>Paid {{ totals.paid }} / Due {{ totals.due }}</p>
</div>`

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log zerolog.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("Running database migrations")

	err := db.AutoMigrate(
		&entity.Store{},
		&entity.Order{},
		&entity.OrderDetail{},
		&entity.ReceiptTemplate{},
		&entity.FiscalSnapshot{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed")
	return nil
}

// SeedDefaultData creates the default store and gives it a logic-less
// default template when it has none.
func SeedDefaultData(db *gorm.DB, log zerolog.Logger) error {
	var store entity.Store
	err := db.Where("slug = ?", DefaultStoreSlug).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		store = entity.Store{
			Name:     "Default Store",
			Slug:     DefaultStoreSlug,
			Settings: entity.DefaultStoreSettings(),
		}
		if err := db.Create(&store).Error; err != nil {
			return fmt.Errorf("failed to create default store: %w", err)
		}
		log.Info().Str("store_id", store.ID.String()).Msg("Default store created")
	} else if err != nil {
		return fmt.Errorf("failed to load default store: %w", err)
	}

	var count int64
	if err := db.Model(&entity.ReceiptTemplate{}).
		Where("store_id = ? AND is_default = ?", store.ID, true).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	tpl := entity.ReceiptTemplate{
		StoreID:   store.ID,
		Name:      "Default receipt",
		Engine:    enum.RenderEngineLogicless.String(),
		Content:   DefaultTemplateContent,
		IsDefault: true,
	}
	if err := db.Create(&tpl).Error; err != nil {
		log.Warn().Err(err).Msg("Failed to create default receipt template")
		return nil
	}

	log.Info().Str("template_id", tpl.ID.String()).Msg("Default receipt template created")
	return nil
}
