package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/repository"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/apperror"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

// PayloadBuilder assembles the canonical receipt payload for an order.
// It only reads from its collaborators.
type PayloadBuilder struct {
	storeRepo repository.StoreRepository
	snapshots repository.SnapshotRepository
	notices   *NoticeSet
	metrics   Recorder
	log       zerolog.Logger
}

// NewPayloadBuilder creates a new payload builder. snapshots may be nil, in
// which case fiscal requests always fall back to a live payload.
func NewPayloadBuilder(
	storeRepo repository.StoreRepository,
	snapshots repository.SnapshotRepository,
	notices *NoticeSet,
	metrics Recorder,
	log zerolog.Logger,
) *PayloadBuilder {
	if metrics == nil {
		metrics = NopRecorder()
	}
	return &PayloadBuilder{
		storeRepo: storeRepo,
		snapshots: snapshots,
		notices:   notices,
		metrics:   metrics,
		log:       log,
	}
}

// Build returns the payload for order in mode, looking up the order's store.
func (b *PayloadBuilder) Build(ctx context.Context, order *entity.Order, mode enum.ReceiptMode) (entity.ReceiptPayload, error) {
	if order == nil {
		return entity.ReceiptPayload{}, apperror.NewNotFoundError("Order")
	}
	store, err := b.storeRepo.GetByID(ctx, order.StoreID)
	if err != nil {
		return entity.ReceiptPayload{}, err
	}
	return b.BuildWithStore(ctx, order, store, mode)
}

// BuildWithStore is Build for callers that already loaded the store.
//
// In fiscal mode the stored snapshot is returned unchanged except for its
// mode tag. Without a snapshot the payload is recomputed from the order
// and tagged live, so it never claims fiscal authenticity it cannot back.
func (b *PayloadBuilder) BuildWithStore(ctx context.Context, order *entity.Order, store *entity.Store, mode enum.ReceiptMode) (entity.ReceiptPayload, error) {
	if order == nil {
		return entity.ReceiptPayload{}, apperror.NewNotFoundError("Order")
	}

	if mode == enum.ReceiptModeFiscal {
		if snapshot, ok := b.lookupSnapshot(ctx, order); ok {
			return snapshot.WithMode(enum.ReceiptModeFiscal), nil
		}
	}

	return b.live(order, store), nil
}

func (b *PayloadBuilder) lookupSnapshot(ctx context.Context, order *entity.Order) (*entity.ReceiptPayload, bool) {
	if b.snapshots == nil {
		b.fallback(order, FallbackMissingSnapshot, nil)
		return nil, false
	}

	snapshot, err := b.snapshots.Lookup(ctx, order.ID)
	if err != nil {
		b.fallback(order, FallbackLookupError, err)
		return nil, false
	}
	if snapshot == nil {
		b.fallback(order, FallbackMissingSnapshot, nil)
		return nil, false
	}
	return snapshot, true
}

func (b *PayloadBuilder) fallback(order *entity.Order, reason string, err error) {
	b.metrics.FiscalFallback(reason)
	if !b.notices.First(reason + ":" + order.ID.String()) {
		return
	}
	b.log.Warn().
		Err(err).
		Str("order_id", order.ID.String()).
		Str("order_number", order.Number).
		Str("reason", reason).
		Msg("fiscal snapshot unavailable, using live receipt")
}

func (b *PayloadBuilder) live(order *entity.Order, store *entity.Store) entity.ReceiptPayload {
	p := entity.ReceiptPayload{
		Meta: entity.ReceiptMeta{
			OrderID:     order.ID.String(),
			OrderNumber: order.Number,
			Mode:        enum.ReceiptModeLive,
			Currency:    order.Currency,
		},
		Totals: entity.ReceiptTotals{
			GrandTotalIncl: money.FromCents(order.Total),
			TaxTotal:       money.FromCents(order.TaxTotal),
			Paid:           money.FromCents(order.Paid),
			Due:            money.FromCents(order.Due),
		},
		Fiscal: entity.ReceiptFiscal{QRPayload: order.FiscalQRPayload},
		Lines:  make([]entity.ReceiptLine, 0, len(order.Details)),
	}
	if !order.CreatedAt.IsZero() {
		p.Meta.CreatedAt = order.CreatedAt.UTC().Format(time.RFC3339)
	}

	if store != nil {
		p.Store = entity.ReceiptStore{
			Name:    store.Name,
			Address: store.Settings.Address,
			Phone:   store.Settings.Phone,
			TaxID:   store.Settings.TaxID,
		}
		if p.Meta.Currency == "" {
			p.Meta.Currency = store.Settings.Currency
		}
	}

	subtotal := decimal.Zero
	for _, d := range order.Details {
		line := lineFromDetail(d, order.TaxType)
		subtotal = subtotal.Add(line.LineTotalIncl)
		p.Lines = append(p.Lines, line)
	}
	p.Totals.SubtotalIncl = subtotal

	return p
}

func lineFromDetail(d entity.OrderDetail, taxType enum.TaxType) entity.ReceiptLine {
	qty := d.Quantity
	if qty.IsNegative() {
		qty = decimal.Zero
	}

	total := money.FromCents(d.Total)
	if !taxType.IsInclusive() {
		total = total.Add(money.FromCents(d.Tax))
	}

	return entity.ReceiptLine{
		Name:          d.Name,
		Qty:           qty,
		LineTotalIncl: total,
	}
}
