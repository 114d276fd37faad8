package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gstreturns/internal/domain"
	"gstreturns/internal/port"
)

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = 10 * time.Minute

type returnCache struct {
	next   port.ReturnRepository
	client *goredis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewReturnCache wraps a ReturnRepository with a read-through cache for GetByPeriod.
// A nil client returns next unchanged. Cache failures are logged and fall through to next.
func NewReturnCache(next port.ReturnRepository, client *goredis.Client, ttl time.Duration, log *zap.Logger) port.ReturnRepository {
	if client == nil {
		return next
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &returnCache{next: next, client: client, ttl: ttl, log: log}
}

// Key returns the cache key of one periodic return.
func Key(businessID uuid.UUID, returnType domain.ReturnType, period string) string {
	return fmt.Sprintf("gstr:return:%s:%s:%s", businessID, returnType, period)
}

func (c *returnCache) GetByPeriod(ctx context.Context, businessID uuid.UUID, returnType domain.ReturnType, period string) (*domain.PeriodicReturn, error) {
	key := Key(businessID, returnType, period)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ret domain.PeriodicReturn
		if jsonErr := json.Unmarshal(data, &ret); jsonErr == nil {
			return &ret, nil
		}
		c.log.Warn("discarding undecodable cached return", zap.String("key", key))
	case !errors.Is(err, goredis.Nil):
		c.log.Warn("return cache read failed", zap.String("key", key), zap.Error(err))
	}

	ret, err := c.next.GetByPeriod(ctx, businessID, returnType, period)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(ret); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("return cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return ret, nil
}

func (c *returnCache) Upsert(ctx context.Context, ret *domain.PeriodicReturn) error {
	if err := c.next.Upsert(ctx, ret); err != nil {
		return err
	}
	c.invalidate(ctx, Key(ret.BusinessID, ret.ReturnType, ret.FilingPeriod))
	return nil
}

func (c *returnCache) ListByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.PeriodicReturn, int, error) {
	return c.next.ListByBusiness(ctx, businessID, offset, limit)
}

func (c *returnCache) MarkFiled(ctx context.Context, input port.FileReturnInput) error {
	if err := c.next.MarkFiled(ctx, input); err != nil {
		return err
	}
	c.invalidate(ctx, Key(input.BusinessID, input.ReturnType, input.Period))
	return nil
}

func (c *returnCache) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn("return cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

// NewClient connects to addr and pings it. An empty addr disables caching and returns nil.
func NewClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}
