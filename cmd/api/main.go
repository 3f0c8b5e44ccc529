package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/service"
	"github.com/wcpos/woocommerce-pos-receipts/internal/config"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/repository"
	"github.com/wcpos/woocommerce-pos-receipts/internal/infrastructure/cache"
	"github.com/wcpos/woocommerce-pos-receipts/internal/infrastructure/database"
	"github.com/wcpos/woocommerce-pos-receipts/internal/infrastructure/metrics"
	infraRepo "github.com/wcpos/woocommerce-pos-receipts/internal/infrastructure/repository"
	"github.com/wcpos/woocommerce-pos-receipts/internal/presentation/http/handler"
	"github.com/wcpos/woocommerce-pos-receipts/internal/presentation/http/routes"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/logger"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := database.SeedDefaultData(db, log); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default data")
	}

	devices, err := config.LoadDeviceProfiles(cfg.Receipt.DeviceProfiles)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load device profiles")
	}
	log.Info().Strs("devices", devices.Names()).Msg("Device profiles loaded")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register metrics")
	}

	// Initialize repositories
	orderRepo := infraRepo.NewOrderRepository(db)
	storeRepo := infraRepo.NewStoreRepository(db)
	templateRepo := infraRepo.NewTemplateRepository(db)
	snapshots := snapshotRepository(ctx, cfg, db, log)

	// Initialize services
	notices := service.NewNoticeSet()
	builder := service.NewPayloadBuilder(storeRepo, snapshots, notices, recorder, logger.Component(log, "payload"))
	receiptService := service.NewReceiptService(orderRepo, storeRepo, templateRepo, builder, service.ReceiptServiceOptions{
		TempDir: cfg.Receipt.TempDir,
		Devices: devices,
		Metrics: recorder,
		Logger:  logger.Component(log, "receipt"),
	})

	handlers := &routes.Handlers{
		Receipt: handler.NewReceiptHandler(receiptService),
	}

	router, limiter := routes.Setup(handlers, &routes.Deps{
		Cfg:      cfg,
		Logger:   logger.Component(log, "http"),
		Notices:  notices,
		Gatherer: registry,
	})
	defer limiter.Stop()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Str("env", cfg.App.Env).Msgf("Starting %s server", cfg.App.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}

// snapshotRepository picks the fiscal snapshot backend. The Redis store reads
// through to PostgreSQL on a miss.
func snapshotRepository(ctx context.Context, cfg *config.Config, db *gorm.DB, log zerolog.Logger) repository.SnapshotRepository {
	pg := infraRepo.NewSnapshotRepository(db)
	if cfg.Receipt.SnapshotStore != config.SnapshotStoreRedis {
		return pg
	}

	client, err := cache.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	return cache.NewSnapshotStore(client, cfg.Redis.KeyPrefix, cfg.Redis.SnapshotExpiry(), pg, log)
}
