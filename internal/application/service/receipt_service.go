package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/adapter"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/renderer"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/repository"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/apperror"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
)

// DeviceRegistry resolves named device profiles.
type DeviceRegistry interface {
	Lookup(name string) (entity.DeviceProfile, bool)
}

// ReceiptServiceOptions holds the non-repository dependencies of ReceiptService.
type ReceiptServiceOptions struct {
	TempDir string
	Devices DeviceRegistry
	Metrics Recorder
	Logger  zerolog.Logger
}

// ReceiptService orchestrates receipt rendering: it resolves mode and
// template configuration, builds the payload, then dispatches to a
// renderer or an output adapter.
type ReceiptService struct {
	orderRepo    repository.OrderRepository
	storeRepo    repository.StoreRepository
	templateRepo repository.TemplateRepository
	builder      *PayloadBuilder
	tempDir      string
	devices      DeviceRegistry
	metrics      Recorder
	log          zerolog.Logger
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	templateRepo repository.TemplateRepository,
	builder *PayloadBuilder,
	opts ReceiptServiceOptions,
) *ReceiptService {
	if opts.Metrics == nil {
		opts.Metrics = NopRecorder()
	}
	return &ReceiptService{
		orderRepo:    orderRepo,
		storeRepo:    storeRepo,
		templateRepo: templateRepo,
		builder:      builder,
		tempDir:      opts.TempDir,
		devices:      opts.Devices,
		metrics:      opts.Metrics,
		log:          opts.Logger,
	}
}

// RenderOptions overrides store configuration for a single render.
// Zero values defer to the store settings.
type RenderOptions struct {
	Mode       string
	TemplateID *uuid.UUID
	Engine     string
}

// Output is a device command string and the format it was produced for.
type Output struct {
	Format enum.OutputFormat
	Body   string
}

// ContentType returns the HTTP content type for the output.
func (o *Output) ContentType() string {
	return o.Format.ContentType()
}

// BuildPayload returns the canonical payload for an order. An empty mode
// uses the store's configured mode.
func (s *ReceiptService) BuildPayload(ctx context.Context, orderID uuid.UUID, mode string) (entity.ReceiptPayload, error) {
	order, store, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entity.ReceiptPayload{}, err
	}
	return s.builder.BuildWithStore(ctx, order, store, resolveMode(mode, store))
}

// Render writes the order's receipt markup to w using the resolved
// template and engine.
func (s *ReceiptService) Render(ctx context.Context, w io.Writer, orderID uuid.UUID, opts RenderOptions) error {
	order, store, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}

	tpl, err := s.resolveTemplate(ctx, opts.TemplateID, store)
	if err != nil {
		return err
	}

	payload, err := s.builder.BuildWithStore(ctx, order, store, resolveMode(opts.Mode, store))
	if err != nil {
		return err
	}

	engineID := opts.Engine
	if engineID == "" {
		engineID = tpl.Engine
	}
	if engineID == "" {
		engineID = store.Settings.ReceiptEngine
	}

	r := renderer.ForID(engineID, renderer.Options{
		TempDir:   s.tempDir,
		Formatter: store.Settings.Formatter(),
		Logger:    s.log,
	})
	if !r.Sandboxed() {
		s.log.Debug().
			Str("order_id", orderID.String()).
			Str("template_id", tpl.ID.String()).
			Msg("rendering with unsandboxed legacy engine")
	}

	err = r.Render(w, tpl, order, payload)
	s.metrics.RenderCompleted(r.Engine().String(), err)
	return err
}

// Transform builds the order's payload and converts it to formatID.
func (s *ReceiptService) Transform(ctx context.Context, orderID uuid.UUID, formatID, mode string, dc adapter.DeviceContext) (*Output, error) {
	order, store, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payload, err := s.builder.BuildWithStore(ctx, order, store, resolveMode(mode, store))
	if err != nil {
		return nil, err
	}
	return s.transform(formatID, payload, dc, store.Settings.Formatter()), nil
}

// TransformPayload converts a caller-supplied payload. The store, when
// given, only contributes its number formatting.
func (s *ReceiptService) TransformPayload(ctx context.Context, formatID string, payload entity.ReceiptPayload, dc adapter.DeviceContext, storeID *uuid.UUID) (*Output, error) {
	formatter := money.Default()
	if storeID != nil {
		store, err := s.storeRepo.GetByID(ctx, *storeID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, apperror.NewNotFoundError("Store")
		}
		formatter = store.Settings.Formatter()
	}
	return s.transform(formatID, payload, dc, formatter), nil
}

// TransformForDevice transforms the order for a named device profile.
func (s *ReceiptService) TransformForDevice(ctx context.Context, orderID uuid.UUID, deviceName, mode string) (*Output, error) {
	if s.devices == nil {
		return nil, apperror.NewNotFoundError("Device profile")
	}
	profile, ok := s.devices.Lookup(deviceName)
	if !ok {
		return nil, apperror.NewNotFoundError("Device profile")
	}

	dc := make(adapter.DeviceContext, len(profile.Context))
	for k, v := range profile.Context {
		dc[k] = v
	}
	return s.Transform(ctx, orderID, profile.Format, mode, dc)
}

// ListTemplates returns a page of the store's receipt templates.
func (s *ReceiptService) ListTemplates(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.ReceiptTemplate, *pagination.Pagination, error) {
	params.Validate()
	templates, total, err := s.templateRepo.ListByStore(ctx, storeID, params)
	if err != nil {
		return nil, nil, err
	}
	return templates, pagination.NewPagination(params.Page, params.PerPage, total), nil
}

func (s *ReceiptService) transform(formatID string, payload entity.ReceiptPayload, dc adapter.DeviceContext, f money.Formatter) *Output {
	if dc == nil {
		dc = adapter.DeviceContext{}
	}
	a := adapter.ForID(formatID, f)
	out := &Output{Format: a.Format(), Body: a.Transform(payload, dc)}
	s.metrics.TransformCompleted(a.Format().String())
	return out
}

func (s *ReceiptService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, *entity.Store, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, apperror.NewNotFoundError("Order")
	}

	store, err := s.storeRepo.GetByID(ctx, order.StoreID)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		store = &entity.Store{ID: order.StoreID}
	}
	return order, store, nil
}

// resolveTemplate picks the requested template, then the store's configured
// template, then the store default. No template at all yields an empty one,
// which renders as a placeholder.
func (s *ReceiptService) resolveTemplate(ctx context.Context, requested *uuid.UUID, store *entity.Store) (entity.ReceiptTemplate, error) {
	if requested != nil {
		tpl, err := s.templateRepo.GetByID(ctx, *requested)
		if err != nil {
			return entity.ReceiptTemplate{}, err
		}
		if tpl == nil || tpl.StoreID != store.ID {
			return entity.ReceiptTemplate{}, apperror.NewNotFoundError("Template")
		}
		return *tpl, nil
	}

	if id := store.Settings.ReceiptTemplateID; id != nil {
		tpl, err := s.templateRepo.GetByID(ctx, *id)
		if err != nil {
			return entity.ReceiptTemplate{}, err
		}
		if tpl != nil && tpl.StoreID == store.ID {
			return *tpl, nil
		}
		s.log.Warn().
			Str("store_id", store.ID.String()).
			Str("template_id", id.String()).
			Msg("configured receipt template not found, using store default")
	}

	tpl, err := s.templateRepo.GetDefault(ctx, store.ID)
	if err != nil {
		return entity.ReceiptTemplate{}, err
	}
	if tpl == nil {
		return entity.ReceiptTemplate{StoreID: store.ID}, nil
	}
	return *tpl, nil
}

func resolveMode(requested string, store *entity.Store) enum.ReceiptMode {
	if requested != "" {
		return enum.ParseReceiptMode(requested)
	}
	if store != nil && store.Settings.ReceiptMode != "" {
		return enum.ParseReceiptMode(store.Settings.ReceiptMode)
	}
	return enum.ReceiptModeLive
}
