package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/repository"
)

// DefaultSnapshotPrefix namespaces fiscal snapshot keys.
const DefaultSnapshotPrefix = "fiscal_snapshot:"

// SnapshotStore reads fiscal payloads from Redis. When a source repository is
// set, misses are read through to it and the result is cached for ttl.
// Redis failures are logged and answered from the source, so a degraded
// cache never hides a stored snapshot.
type SnapshotStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	source repository.SnapshotRepository
	log    zerolog.Logger
}

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

// NewSnapshotStore creates a Redis-backed snapshot store. source may be nil.
func NewSnapshotStore(client *goredis.Client, prefix string, ttl time.Duration, source repository.SnapshotRepository, log zerolog.Logger) *SnapshotStore {
	if prefix == "" {
		prefix = DefaultSnapshotPrefix
	}
	return &SnapshotStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		source: source,
		log:    log.With().Str("component", "snapshot_store").Logger(),
	}
}

// Lookup returns nil, nil if no snapshot exists for the order.
func (s *SnapshotStore) Lookup(ctx context.Context, orderID uuid.UUID) (*entity.ReceiptPayload, error) {
	val, err := s.client.Get(ctx, s.key(orderID)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return s.readThrough(ctx, orderID)
		}
		if s.source == nil {
			return nil, fmt.Errorf("redis snapshot get: %w", err)
		}
		s.log.Warn().Err(err).Str("order_id", orderID.String()).Msg("Redis snapshot get failed, reading from source")
		return s.readThrough(ctx, orderID)
	}

	var payload entity.ReceiptPayload
	if err := json.Unmarshal(val, &payload); err != nil {
		if s.source == nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", orderID, err)
		}
		s.log.Warn().Err(err).Str("order_id", orderID.String()).Msg("Cached snapshot is corrupt, reading from source")
		return s.readThrough(ctx, orderID)
	}
	return &payload, nil
}

// Set caches a payload for the order.
func (s *SnapshotStore) Set(ctx context.Context, orderID uuid.UUID, payload entity.ReceiptPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", orderID, err)
	}
	if err := s.client.Set(ctx, s.key(orderID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}

func (s *SnapshotStore) readThrough(ctx context.Context, orderID uuid.UUID) (*entity.ReceiptPayload, error) {
	if s.source == nil {
		return nil, nil
	}
	payload, err := s.source.Lookup(ctx, orderID)
	if err != nil || payload == nil {
		return payload, err
	}
	if err := s.Set(ctx, orderID, *payload); err != nil {
		s.log.Warn().Err(err).Str("order_id", orderID.String()).Msg("Failed to cache snapshot")
	}
	return payload, nil
}

func (s *SnapshotStore) key(orderID uuid.UUID) string {
	return s.prefix + orderID.String()
}
