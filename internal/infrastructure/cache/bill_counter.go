package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vyapar/backend/internal/domain/trade"
)

const billCounterKeyPrefix = "vyapar:bill_counter:"

// counterClient is the subset of the Redis API the bill counter uses
type counterClient interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// BillSeedSource reports the highest bill number already stored for a tenant
type BillSeedSource interface {
	MaxBillNumber(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// RedisBillCounter allocates bill numbers with INCR.
// A missing key is seeded with SETNX from the database so the sequence
// continues after existing sales; concurrent seeders agree because only one
// SETNX succeeds, and INCR is atomic afterwards.
type RedisBillCounter struct {
	client    counterClient
	seed      BillSeedSource
	keyPrefix string
}

// NewRedisBillCounter creates a RedisBillCounter
func NewRedisBillCounter(client redis.Cmdable, seed BillSeedSource) *RedisBillCounter {
	return &RedisBillCounter{
		client:    client,
		seed:      seed,
		keyPrefix: billCounterKeyPrefix,
	}
}

// Next returns the tenant's next bill number
func (c *RedisBillCounter) Next(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	key := c.keyPrefix + tenantID.String()

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("check bill counter: %w", err)
	}
	if exists == 0 {
		start, err := c.seed.MaxBillNumber(ctx, tenantID)
		if err != nil {
			return 0, fmt.Errorf("seed bill counter: %w", err)
		}
		if start < trade.FirstBillNumber-1 {
			start = trade.FirstBillNumber - 1
		}
		if err := c.client.SetNX(ctx, key, start, 0).Err(); err != nil {
			return 0, fmt.Errorf("seed bill counter: %w", err)
		}
	}

	next, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment bill counter: %w", err)
	}
	return next, nil
}

var _ trade.BillNumberAllocator = (*RedisBillCounter)(nil)
