package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	derrors "github.com/priit2000/out-of-android/internal/domain/errors"
	"github.com/priit2000/out-of-android/internal/domain/screening"
	"github.com/priit2000/out-of-android/internal/infrastructure/config"
)

// redisStore implements the Store interface on Redis. Scalar settings live in
// plain string keys, the whitelist in a native set; both give the per-key
// atomicity and cross-process visibility the Store contract asks for without
// any locking on our side.
type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed settings store with the given configuration
func NewRedisStore(cfg *config.RedisConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	if cfg == nil {
		return nil, fmt.Errorf("redis config is required")
	}

	opts := &redis.Options{
		Addr:         cfg.URL,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	client := redis.NewClient(opts)

	// Health check with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("redis settings store initialized",
		zap.String("addr", cfg.URL),
		zap.Int("db", cfg.DB))

	return &redisStore{
		client: client,
		logger: logger,
	}, nil
}

// unavailable wraps a storage failure so callers can tell it apart from an
// unset key. Defaults are never substituted for these.
func unavailable(err error) error {
	return derrors.NewUnavailableError("config", "settings store unavailable").WithCause(err)
}

func (s *redisStore) getBool(ctx context.Context, key string, def bool) (bool, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return def, nil
	}
	if err != nil {
		s.logger.Error("redis get failed", zap.String("key", key), zap.Error(err))
		return def, unavailable(err)
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		s.logger.Warn("stored value is not a bool, using default",
			zap.String("key", key),
			zap.String("value", raw))
		return def, nil
	}
	return v, nil
}

func (s *redisStore) setBool(ctx context.Context, key string, v bool) error {
	if err := s.client.Set(ctx, key, strconv.FormatBool(v), 0).Err(); err != nil {
		s.logger.Error("redis set failed", zap.String("key", key), zap.Error(err))
		return unavailable(err)
	}
	return nil
}

func (s *redisStore) getTime(ctx context.Context, key string, def screening.TimeOfDay) (screening.TimeOfDay, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return def, nil
	}
	if err != nil {
		s.logger.Error("redis get failed", zap.String("key", key), zap.Error(err))
		return def, unavailable(err)
	}

	t, err := screening.ParseTimeOfDay(raw)
	if err != nil {
		// Corrupted schedule times must not break call handling.
		s.logger.Warn("stored value is not a valid HH:MM time, using default",
			zap.String("key", key),
			zap.String("value", raw))
		return def, nil
	}
	return t, nil
}

func (s *redisStore) setTime(ctx context.Context, key string, t screening.TimeOfDay) error {
	if err := s.client.Set(ctx, key, t.String(), 0).Err(); err != nil {
		s.logger.Error("redis set failed", zap.String("key", key), zap.Error(err))
		return unavailable(err)
	}
	return nil
}

func (s *redisStore) Snapshot(ctx context.Context) (Settings, error) {
	def := Defaults()

	enabled, err := s.AutoResponseEnabled(ctx)
	if err != nil {
		return def, err
	}
	message, err := s.AutoResponseMessage(ctx)
	if err != nil {
		return def, err
	}
	wlEnabled, err := s.WhitelistEnabled(ctx)
	if err != nil {
		return def, err
	}
	wlNumbers, err := s.WhitelistNumbers(ctx)
	if err != nil {
		return def, err
	}
	scheduled, err := s.ScheduledModeEnabled(ctx)
	if err != nil {
		return def, err
	}
	start, err := s.ScheduleStart(ctx)
	if err != nil {
		return def, err
	}
	end, err := s.ScheduleEnd(ctx)
	if err != nil {
		return def, err
	}

	return Settings{
		AutoResponseEnabled:  enabled,
		AutoResponseMessage:  message,
		WhitelistEnabled:     wlEnabled,
		WhitelistNumbers:     wlNumbers,
		ScheduledModeEnabled: scheduled,
		ScheduleStart:        start,
		ScheduleEnd:          end,
	}, nil
}

func (s *redisStore) AutoResponseEnabled(ctx context.Context) (bool, error) {
	return s.getBool(ctx, KeyAutoResponseEnabled, false)
}

func (s *redisStore) SetAutoResponseEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyAutoResponseEnabled, enabled)
}

func (s *redisStore) AutoResponseMessage(ctx context.Context) (string, error) {
	raw, err := s.client.Get(ctx, KeyAutoResponseMessage).Result()
	if err == redis.Nil {
		return DefaultAutoResponseMessage, nil
	}
	if err != nil {
		s.logger.Error("redis get failed", zap.String("key", KeyAutoResponseMessage), zap.Error(err))
		return DefaultAutoResponseMessage, unavailable(err)
	}
	if raw == "" {
		// The response message must be non-empty when used.
		return DefaultAutoResponseMessage, nil
	}
	return raw, nil
}

func (s *redisStore) SetAutoResponseMessage(ctx context.Context, message string) error {
	if err := s.client.Set(ctx, KeyAutoResponseMessage, message, 0).Err(); err != nil {
		s.logger.Error("redis set failed", zap.String("key", KeyAutoResponseMessage), zap.Error(err))
		return unavailable(err)
	}
	return nil
}

func (s *redisStore) WhitelistEnabled(ctx context.Context) (bool, error) {
	return s.getBool(ctx, KeyWhitelistEnabled, false)
}

func (s *redisStore) SetWhitelistEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyWhitelistEnabled, enabled)
}

func (s *redisStore) WhitelistNumbers(ctx context.Context) ([]string, error) {
	numbers, err := s.client.SMembers(ctx, KeyWhitelistContacts).Result()
	if err != nil {
		s.logger.Error("redis smembers failed", zap.String("key", KeyWhitelistContacts), zap.Error(err))
		return nil, unavailable(err)
	}
	return numbers, nil
}

func (s *redisStore) SetWhitelistNumbers(ctx context.Context, numbers []string) error {
	// DEL plus SADD inside MULTI/EXEC keeps the replacement atomic for
	// concurrent readers of the same key.
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, KeyWhitelistContacts)
	if len(numbers) > 0 {
		members := make([]interface{}, len(numbers))
		for i, n := range numbers {
			members[i] = n
		}
		pipe.SAdd(ctx, KeyWhitelistContacts, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("redis whitelist replace failed", zap.Error(err))
		return unavailable(err)
	}
	return nil
}

func (s *redisStore) AddWhitelistNumber(ctx context.Context, number string) error {
	if err := s.client.SAdd(ctx, KeyWhitelistContacts, number).Err(); err != nil {
		s.logger.Error("redis sadd failed", zap.String("key", KeyWhitelistContacts), zap.Error(err))
		return unavailable(err)
	}
	return nil
}

func (s *redisStore) RemoveWhitelistNumber(ctx context.Context, number string) error {
	if err := s.client.SRem(ctx, KeyWhitelistContacts, number).Err(); err != nil {
		s.logger.Error("redis srem failed", zap.String("key", KeyWhitelistContacts), zap.Error(err))
		return unavailable(err)
	}
	return nil
}

func (s *redisStore) ScheduledModeEnabled(ctx context.Context) (bool, error) {
	return s.getBool(ctx, KeyScheduledEnabled, false)
}

func (s *redisStore) SetScheduledModeEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyScheduledEnabled, enabled)
}

func (s *redisStore) ScheduleStart(ctx context.Context) (screening.TimeOfDay, error) {
	return s.getTime(ctx, KeyScheduleStartTime, Defaults().ScheduleStart)
}

func (s *redisStore) SetScheduleStart(ctx context.Context, t screening.TimeOfDay) error {
	return s.setTime(ctx, KeyScheduleStartTime, t)
}

func (s *redisStore) ScheduleEnd(ctx context.Context) (screening.TimeOfDay, error) {
	return s.getTime(ctx, KeyScheduleEndTime, Defaults().ScheduleEnd)
}

func (s *redisStore) SetScheduleEnd(ctx context.Context, t screening.TimeOfDay) error {
	return s.setTime(ctx, KeyScheduleEndTime, t)
}

func (s *redisStore) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("redis close failed", zap.Error(err))
		return fmt.Errorf("redis close failed: %w", err)
	}

	s.logger.Info("redis settings store closed")
	return nil
}
