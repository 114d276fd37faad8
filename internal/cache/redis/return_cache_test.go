package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstreturns/internal/cache/redis"
	"gstreturns/internal/domain"
	"gstreturns/internal/port"
	"gstreturns/mocks"
)

func setup(t *testing.T) (*miniredis.Miniredis, *mocks.MockReturnRepo, port.ReturnRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	inner := new(mocks.MockReturnRepo)
	return mr, inner, redis.NewReturnCache(inner, client, time.Minute, zap.NewNop())
}

func sampleReturn(bizID uuid.UUID) *domain.PeriodicReturn {
	net := 1000.0
	return &domain.PeriodicReturn{
		ID:                uuid.New(),
		BusinessID:        bizID,
		GSTIN:             "27AAPFU0939F1ZV",
		ReturnType:        domain.ReturnTypeGSTR3B,
		FilingPeriod:      "2026-01",
		Payload:           json.RawMessage(`{"fp":"2026-01"}`),
		TotalTaxLiability: 7000,
		NetTaxPayable:     &net,
		Status:            domain.ReturnStatusGenerated,
		GeneratedAt:       time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestReturnCache_ReadThrough(t *testing.T) {
	mr, inner, cache := setup(t)
	ctx := context.Background()
	bizID := uuid.New()
	ret := sampleReturn(bizID)

	inner.On("GetByPeriod", mock.Anything, bizID, domain.ReturnTypeGSTR3B, "2026-01").Return(ret, nil).Once()

	first, err := cache.GetByPeriod(ctx, bizID, domain.ReturnTypeGSTR3B, "2026-01")
	require.NoError(t, err)
	assert.Equal(t, ret.ID, first.ID)
	assert.True(t, mr.Exists(redis.Key(bizID, domain.ReturnTypeGSTR3B, "2026-01")))

	second, err := cache.GetByPeriod(ctx, bizID, domain.ReturnTypeGSTR3B, "2026-01")
	require.NoError(t, err)
	assert.Equal(t, ret.ID, second.ID)
	assert.Equal(t, 1000.0, *second.NetTaxPayable)
	assert.JSONEq(t, `{"fp":"2026-01"}`, string(second.Payload))

	inner.AssertNumberOfCalls(t, "GetByPeriod", 1)
}

func TestReturnCache_NotFoundIsNotCached(t *testing.T) {
	mr, inner, cache := setup(t)
	bizID := uuid.New()

	inner.On("GetByPeriod", mock.Anything, bizID, domain.ReturnTypeGSTR1, "2026-01").
		Return(nil, domain.ErrReturnNotFound).Twice()

	for i := 0; i < 2; i++ {
		_, err := cache.GetByPeriod(context.Background(), bizID, domain.ReturnTypeGSTR1, "2026-01")
		assert.True(t, errors.Is(err, domain.ErrReturnNotFound))
	}
	assert.False(t, mr.Exists(redis.Key(bizID, domain.ReturnTypeGSTR1, "2026-01")))
	inner.AssertExpectations(t)
}

func TestReturnCache_InvalidatesOnWrite(t *testing.T) {
	mr, inner, cache := setup(t)
	ctx := context.Background()
	bizID := uuid.New()
	ret := sampleReturn(bizID)
	key := redis.Key(bizID, ret.ReturnType, ret.FilingPeriod)

	require.NoError(t, mr.Set(key, `{"id":"stale"}`))
	inner.On("Upsert", mock.Anything, ret).Return(nil).Once()
	require.NoError(t, cache.Upsert(ctx, ret))
	assert.False(t, mr.Exists(key))

	require.NoError(t, mr.Set(key, `{}`))
	in := port.FileReturnInput{BusinessID: bizID, ReturnType: ret.ReturnType, Period: ret.FilingPeriod}
	inner.On("MarkFiled", mock.Anything, in).Return(nil).Once()
	require.NoError(t, cache.MarkFiled(ctx, in))
	assert.False(t, mr.Exists(key))
}

func TestReturnCache_FailedWriteKeepsEntry(t *testing.T) {
	mr, inner, cache := setup(t)
	bizID := uuid.New()
	ret := sampleReturn(bizID)
	key := redis.Key(bizID, ret.ReturnType, ret.FilingPeriod)

	require.NoError(t, mr.Set(key, `{}`))
	inner.On("Upsert", mock.Anything, ret).Return(domain.ErrReturnAlreadyFiled).Once()
	err := cache.Upsert(context.Background(), ret)
	assert.True(t, errors.Is(err, domain.ErrReturnAlreadyFiled))
	assert.True(t, mr.Exists(key))
}

func TestReturnCache_RedisDownFallsThrough(t *testing.T) {
	mr, inner, cache := setup(t)
	bizID := uuid.New()
	ret := sampleReturn(bizID)
	mr.Close()

	inner.On("GetByPeriod", mock.Anything, bizID, domain.ReturnTypeGSTR3B, "2026-01").Return(ret, nil)
	got, err := cache.GetByPeriod(context.Background(), bizID, domain.ReturnTypeGSTR3B, "2026-01")
	require.NoError(t, err)
	assert.Equal(t, ret.ID, got.ID)
}

func TestNewReturnCache_NilClient(t *testing.T) {
	inner := new(mocks.MockReturnRepo)
	assert.Same(t, inner, redis.NewReturnCache(inner, nil, 0, zap.NewNop()))
}

func TestNewClient_EmptyAddr(t *testing.T) {
	client, err := redis.NewClient(context.Background(), "", "", 0)
	require.NoError(t, err)
	assert.Nil(t, client)
}
