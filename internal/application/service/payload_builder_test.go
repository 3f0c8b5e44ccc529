package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/apperror"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/logger"
)

var (
	testStoreID = uuid.MustParse("2f6f7a38-6d4e-4bb2-9d53-64a9a8f0c001")
	testOrderID = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")
)

func testStore() *entity.Store {
	return &entity.Store{
		ID:   testStoreID,
		Name: "Corner Shop",
		Settings: entity.StoreSettings{
			Address:  "1 Main St",
			Currency: "USD",
		},
	}
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:              testOrderID,
		StoreID:         testStoreID,
		Number:          "1042",
		Total:           1999,
		TaxTotal:        0,
		FiscalQRPayload: "",
		CreatedAt:       time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Details: []entity.OrderDetail{
			{Name: "Widget", Quantity: decimal.NewFromInt(2), Total: 1999},
		},
	}
}

func newBuilder(snapshots *MockSnapshotRepository, rec Recorder, log zerolog.Logger) (*PayloadBuilder, *MockStoreRepository) {
	stores := new(MockStoreRepository)
	stores.On("GetByID", mock.Anything, testStoreID).Return(testStore(), nil)
	if snapshots == nil {
		return NewPayloadBuilder(stores, nil, NewNoticeSet(), rec, log), stores
	}
	return NewPayloadBuilder(stores, snapshots, NewNoticeSet(), rec, log), stores
}

func TestPayloadBuilder_Live(t *testing.T) {
	b, stores := newBuilder(nil, nil, zerolog.Nop())

	order := testOrder()
	order.Total = 2500
	order.TaxTotal = 150
	order.FiscalQRPayload = "qr://1042"
	order.Details = []entity.OrderDetail{
		{Name: "Widget", Quantity: decimal.NewFromInt(2), Total: 1800, Tax: 199},
		{Name: "Refunded", Quantity: decimal.NewFromInt(-1), Total: 0},
	}

	p, err := b.Build(context.Background(), order, enum.ReceiptModeLive)
	require.NoError(t, err)

	assert.Equal(t, enum.ReceiptModeLive, p.Meta.Mode)
	assert.Equal(t, "1042", p.Meta.OrderNumber)
	assert.Equal(t, testOrderID.String(), p.Meta.OrderID)
	assert.Equal(t, "2026-03-14T09:26:53Z", p.Meta.CreatedAt)
	assert.Equal(t, "USD", p.Meta.Currency)
	assert.Equal(t, "Corner Shop", p.Store.Name)
	assert.Equal(t, "1 Main St", p.Store.Address)
	assert.Equal(t, "qr://1042", p.Fiscal.QRPayload)
	assert.Equal(t, "25", p.Totals.GrandTotalIncl.String())
	assert.Equal(t, "1.5", p.Totals.TaxTotal.String())

	require.Len(t, p.Lines, 2)
	assert.Equal(t, "19.99", p.Lines[0].LineTotalIncl.String())
	assert.True(t, p.Lines[1].Qty.IsZero(), "negative quantities are clamped")
	assert.Equal(t, "19.99", p.Totals.SubtotalIncl.String())

	stores.AssertExpectations(t)
}

func TestPayloadBuilder_InclusiveTaxIsNotAddedTwice(t *testing.T) {
	b, _ := newBuilder(nil, nil, zerolog.Nop())

	order := testOrder()
	order.TaxType = enum.TaxTypeInclusive
	order.Details = []entity.OrderDetail{{Name: "Widget", Quantity: decimal.NewFromInt(1), Total: 1999, Tax: 333}}

	p, err := b.Build(context.Background(), order, enum.ReceiptModeLive)
	require.NoError(t, err)
	assert.Equal(t, "19.99", p.Lines[0].LineTotalIncl.String())
}

func TestPayloadBuilder_FiscalUsesSnapshot(t *testing.T) {
	snapshot := &entity.ReceiptPayload{
		Meta:   entity.ReceiptMeta{OrderNumber: "1042", Mode: enum.ReceiptModeLive},
		Store:  entity.ReceiptStore{Name: "Name At Sale Time"},
		Totals: entity.ReceiptTotals{GrandTotalIncl: decimal.RequireFromString("17.50")},
		Fiscal: entity.ReceiptFiscal{QRPayload: "fiscal-qr"},
	}
	snapshots := new(MockSnapshotRepository)
	snapshots.On("Lookup", mock.Anything, testOrderID).Return(snapshot, nil)
	rec := &recordingRecorder{}

	b, _ := newBuilder(snapshots, rec, zerolog.Nop())
	p, err := b.Build(context.Background(), testOrder(), enum.ReceiptModeFiscal)
	require.NoError(t, err)

	assert.Equal(t, enum.ReceiptModeFiscal, p.Meta.Mode)
	assert.Equal(t, "Name At Sale Time", p.Store.Name)
	assert.Equal(t, "17.5", p.Totals.GrandTotalIncl.String())
	assert.Equal(t, "fiscal-qr", p.Fiscal.QRPayload)
	assert.Empty(t, rec.fallbacks)
	assert.Equal(t, enum.ReceiptModeLive, snapshot.Meta.Mode, "snapshot left untouched")
	snapshots.AssertExpectations(t)
}

func TestPayloadBuilder_FiscalWithoutSnapshotIsTaggedLive(t *testing.T) {
	snapshots := new(MockSnapshotRepository)
	snapshots.On("Lookup", mock.Anything, testOrderID).Return(nil, nil)
	rec := &recordingRecorder{}

	b, _ := newBuilder(snapshots, rec, zerolog.Nop())
	p, err := b.Build(context.Background(), testOrder(), enum.ReceiptModeFiscal)
	require.NoError(t, err)

	assert.Equal(t, enum.ReceiptModeLive, p.Meta.Mode)
	assert.Equal(t, "Corner Shop", p.Store.Name)
	assert.Equal(t, []string{FallbackMissingSnapshot}, rec.fallbacks)
}

func TestPayloadBuilder_FiscalLookupErrorFallsBack(t *testing.T) {
	snapshots := new(MockSnapshotRepository)
	snapshots.On("Lookup", mock.Anything, testOrderID).Return(nil, errors.New("connection refused"))
	rec := &recordingRecorder{}

	b, _ := newBuilder(snapshots, rec, zerolog.Nop())
	p, err := b.Build(context.Background(), testOrder(), enum.ReceiptModeFiscal)
	require.NoError(t, err)

	assert.Equal(t, enum.ReceiptModeLive, p.Meta.Mode)
	assert.Equal(t, []string{FallbackLookupError}, rec.fallbacks)
}

func TestPayloadBuilder_NoSnapshotStoreFallsBack(t *testing.T) {
	b, _ := newBuilder(nil, nil, zerolog.Nop())

	p, err := b.Build(context.Background(), testOrder(), enum.ReceiptModeFiscal)
	require.NoError(t, err)
	assert.Equal(t, enum.ReceiptModeLive, p.Meta.Mode)
}

func TestPayloadBuilder_FallbackWarningThrottledUntilReset(t *testing.T) {
	var buf bytes.Buffer
	snapshots := new(MockSnapshotRepository)
	snapshots.On("Lookup", mock.Anything, testOrderID).Return(nil, nil)

	stores := new(MockStoreRepository)
	stores.On("GetByID", mock.Anything, testStoreID).Return(testStore(), nil)
	notices := NewNoticeSet()
	b := NewPayloadBuilder(stores, snapshots, notices, nil, logger.NewWithWriter("debug", &buf))

	for i := 0; i < 3; i++ {
		_, err := b.Build(context.Background(), testOrder(), enum.ReceiptModeFiscal)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "fiscal snapshot unavailable"))

	notices.Reset()
	_, err := b.Build(context.Background(), testOrder(), enum.ReceiptModeFiscal)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "fiscal snapshot unavailable"))
}

func TestPayloadBuilder_Errors(t *testing.T) {
	b, _ := newBuilder(nil, nil, zerolog.Nop())
	_, err := b.Build(context.Background(), nil, enum.ReceiptModeLive)
	assert.True(t, apperror.HasReason(err, apperror.ReasonNotFound))

	stores := new(MockStoreRepository)
	stores.On("GetByID", mock.Anything, testStoreID).Return(nil, errors.New("db down"))
	b = NewPayloadBuilder(stores, nil, NewNoticeSet(), nil, zerolog.Nop())
	_, err = b.Build(context.Background(), testOrder(), enum.ReceiptModeLive)
	assert.EqualError(t, err, "db down")
}
