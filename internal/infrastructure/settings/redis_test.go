package settings

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	derrors "github.com/priit2000/out-of-android/internal/domain/errors"
	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/config"
)

func setupTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.RedisConfig{
		URL:          mr.Addr(),
		DB:           0,
		PoolSize:     5,
		MinIdleConns: 1,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	store, err := NewRedisStore(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestNewRedisStore(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		store, _ := setupTestStore(t)
		assert.NotNil(t, store)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewRedisStore(&config.RedisConfig{URL: "localhost:6379"}, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger is required")
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewRedisStore(nil, zaptest.NewLogger(t))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redis config is required")
	})

	t.Run("connection failure", func(t *testing.T) {
		cfg := &config.RedisConfig{
			URL:         "localhost:1", // nothing listens here
			DialTimeout: 100 * time.Millisecond,
		}
		_, err := NewRedisStore(cfg, zaptest.NewLogger(t))
		assert.Error(t, err)
	})
}

func TestRedisStore_Defaults(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	// An empty store reads back every documented default
	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)

	assert.False(t, snapshot.AutoResponseEnabled)
	assert.Equal(t, DefaultAutoResponseMessage, snapshot.AutoResponseMessage)
	assert.False(t, snapshot.WhitelistEnabled)
	assert.Empty(t, snapshot.WhitelistNumbers)
	assert.False(t, snapshot.ScheduledModeEnabled)
	assert.Equal(t, "09:00", snapshot.ScheduleStart.String())
	assert.Equal(t, "17:00", snapshot.ScheduleEnd.String())
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetAutoResponseEnabled(ctx, true))
	require.NoError(t, store.SetAutoResponseMessage(ctx, "Back at 3pm."))
	require.NoError(t, store.SetWhitelistEnabled(ctx, true))
	require.NoError(t, store.SetWhitelistNumbers(ctx, []string{"+1555", "+2666"}))
	require.NoError(t, store.SetScheduledModeEnabled(ctx, true))
	require.NoError(t, store.SetScheduleStart(ctx, screening.MustParseTimeOfDay("22:00")))
	require.NoError(t, store.SetScheduleEnd(ctx, screening.MustParseTimeOfDay("07:00")))

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)

	assert.True(t, snapshot.AutoResponseEnabled)
	assert.Equal(t, "Back at 3pm.", snapshot.AutoResponseMessage)
	assert.True(t, snapshot.WhitelistEnabled)
	assert.ElementsMatch(t, []string{"+1555", "+2666"}, snapshot.WhitelistNumbers)
	assert.True(t, snapshot.ScheduledModeEnabled)
	assert.Equal(t, "22:00", snapshot.ScheduleStart.String())
	assert.Equal(t, "07:00", snapshot.ScheduleEnd.String())
}

func TestRedisStore_LastWriteWins(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetAutoResponseMessage(ctx, "first"))
	require.NoError(t, store.SetAutoResponseMessage(ctx, "second"))

	got, err := store.AutoResponseMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestRedisStore_WhitelistAddRemove(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddWhitelistNumber(ctx, "+1555"))
	require.NoError(t, store.AddWhitelistNumber(ctx, "+2666"))
	require.NoError(t, store.AddWhitelistNumber(ctx, "+1555")) // duplicate collapses

	numbers, err := store.WhitelistNumbers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"+1555", "+2666"}, numbers)

	require.NoError(t, store.RemoveWhitelistNumber(ctx, "+1555"))

	numbers, err = store.WhitelistNumbers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"+2666"}, numbers)

	// Removing a non-member is a no-op
	require.NoError(t, store.RemoveWhitelistNumber(ctx, "+0000"))
}

func TestRedisStore_SetWhitelistNumbersReplaces(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetWhitelistNumbers(ctx, []string{"+1", "+2", "+3"}))
	require.NoError(t, store.SetWhitelistNumbers(ctx, []string{"+9"}))

	numbers, err := store.WhitelistNumbers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"+9"}, numbers)

	require.NoError(t, store.SetWhitelistNumbers(ctx, nil))
	numbers, err = store.WhitelistNumbers(ctx)
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestRedisStore_MalformedValuesFallBack(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	// Corrupted values written behind the store's back must not break reads
	mr.Set(KeyScheduleStartTime, "25:99")
	mr.Set(KeyScheduleEndTime, "not a time")
	mr.Set(KeyAutoResponseEnabled, "definitely")

	start, err := store.ScheduleStart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "09:00", start.String())

	end, err := store.ScheduleEnd(ctx)
	require.NoError(t, err)
	assert.Equal(t, "17:00", end.String())

	enabled, err := store.AutoResponseEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestRedisStore_EmptyMessageFallsBack(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetAutoResponseMessage(ctx, ""))

	got, err := store.AutoResponseMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultAutoResponseMessage, got)
}

func TestRedisStore_UnavailableBackend(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	mr.Close()

	_, err := store.AutoResponseEnabled(ctx)
	require.Error(t, err)
	assert.True(t, derrors.IsType(err, derrors.ErrorTypeUnavailable))

	_, err = store.Snapshot(ctx)
	require.Error(t, err)
	assert.True(t, derrors.IsType(err, derrors.ErrorTypeUnavailable))

	err = store.SetAutoResponseEnabled(ctx, true)
	require.Error(t, err)
	assert.True(t, derrors.IsType(err, derrors.ErrorTypeUnavailable))
}

func TestRedisStore_KeyLayoutCompatibility(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetAutoResponseEnabled(ctx, true))
	require.NoError(t, store.SetScheduleStart(ctx, screening.MustParseTimeOfDay("08:30")))

	// The persisted layout is part of the contract: values live under the
	// documented keys in their documented serializations.
	raw, err := mr.Get(KeyAutoResponseEnabled)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	raw, err = mr.Get(KeyScheduleStartTime)
	require.NoError(t, err)
	assert.Equal(t, "08:30", raw)
}
