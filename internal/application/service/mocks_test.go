package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/pagination"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, storeID uuid.UUID, number string) (*entity.Order, error) {
	args := m.Called(ctx, storeID, number)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Store)
	return s, args.Error(1)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.ReceiptTemplate)
	return t, args.Error(1)
}

func (m *MockTemplateRepository) GetDefault(ctx context.Context, storeID uuid.UUID) (*entity.ReceiptTemplate, error) {
	args := m.Called(ctx, storeID)
	t, _ := args.Get(0).(*entity.ReceiptTemplate)
	return t, args.Error(1)
}

func (m *MockTemplateRepository) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams) ([]entity.ReceiptTemplate, int64, error) {
	args := m.Called(ctx, storeID, params)
	t, _ := args.Get(0).([]entity.ReceiptTemplate)
	return t, args.Get(1).(int64), args.Error(2)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Lookup(ctx context.Context, orderID uuid.UUID) (*entity.ReceiptPayload, error) {
	args := m.Called(ctx, orderID)
	p, _ := args.Get(0).(*entity.ReceiptPayload)
	return p, args.Error(1)
}

// recordingRecorder captures pipeline events.
type recordingRecorder struct {
	mu         sync.Mutex
	renders    []string
	transforms []string
	fallbacks  []string
}

func (r *recordingRecorder) RenderCompleted(engine string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders = append(r.renders, engine)
}

func (r *recordingRecorder) TransformCompleted(format string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transforms = append(r.transforms, format)
}

func (r *recordingRecorder) FiscalFallback(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks = append(r.fallbacks, reason)
}

type staticDevices map[string]entity.DeviceProfile

func (d staticDevices) Lookup(name string) (entity.DeviceProfile, bool) {
	p, ok := d[name]
	return p, ok
}
