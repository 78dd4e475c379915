package settings

import (
	"context"
	"sync"

	"github.com/priit2000/out-of-android/internal/domain/screening"
)

// MemoryStore is an in-memory Store for tests and embedded use. It honors the
// same contract as the Redis store: per-key last-write-wins, defaults for
// absent keys. Nothing survives process exit.
type MemoryStore struct {
	mu        sync.RWMutex
	scalars   map[string]string
	whitelist map[string]struct{}
}

// NewMemoryStore creates an empty in-memory settings store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scalars:   make(map[string]string),
		whitelist: make(map[string]struct{}),
	}
}

func (s *MemoryStore) Snapshot(ctx context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Defaults()
	if raw, ok := s.scalars[KeyAutoResponseEnabled]; ok {
		out.AutoResponseEnabled = raw == "true"
	}
	if raw, ok := s.scalars[KeyAutoResponseMessage]; ok && raw != "" {
		out.AutoResponseMessage = raw
	}
	if raw, ok := s.scalars[KeyWhitelistEnabled]; ok {
		out.WhitelistEnabled = raw == "true"
	}
	if raw, ok := s.scalars[KeyScheduledEnabled]; ok {
		out.ScheduledModeEnabled = raw == "true"
	}
	if raw, ok := s.scalars[KeyScheduleStartTime]; ok {
		if t, err := screening.ParseTimeOfDay(raw); err == nil {
			out.ScheduleStart = t
		}
	}
	if raw, ok := s.scalars[KeyScheduleEndTime]; ok {
		if t, err := screening.ParseTimeOfDay(raw); err == nil {
			out.ScheduleEnd = t
		}
	}

	out.WhitelistNumbers = make([]string, 0, len(s.whitelist))
	for n := range s.whitelist {
		out.WhitelistNumbers = append(out.WhitelistNumbers, n)
	}
	return out, nil
}

func (s *MemoryStore) getScalar(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.scalars[key]
	return raw, ok
}

func (s *MemoryStore) setScalar(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scalars[key] = value
}

func (s *MemoryStore) getBool(key string) bool {
	raw, ok := s.getScalar(key)
	return ok && raw == "true"
}

func (s *MemoryStore) setBool(key string, v bool) {
	if v {
		s.setScalar(key, "true")
	} else {
		s.setScalar(key, "false")
	}
}

func (s *MemoryStore) AutoResponseEnabled(ctx context.Context) (bool, error) {
	return s.getBool(KeyAutoResponseEnabled), nil
}

func (s *MemoryStore) SetAutoResponseEnabled(ctx context.Context, enabled bool) error {
	s.setBool(KeyAutoResponseEnabled, enabled)
	return nil
}

func (s *MemoryStore) AutoResponseMessage(ctx context.Context) (string, error) {
	if raw, ok := s.getScalar(KeyAutoResponseMessage); ok && raw != "" {
		return raw, nil
	}
	return DefaultAutoResponseMessage, nil
}

func (s *MemoryStore) SetAutoResponseMessage(ctx context.Context, message string) error {
	s.setScalar(KeyAutoResponseMessage, message)
	return nil
}

func (s *MemoryStore) WhitelistEnabled(ctx context.Context) (bool, error) {
	return s.getBool(KeyWhitelistEnabled), nil
}

func (s *MemoryStore) SetWhitelistEnabled(ctx context.Context, enabled bool) error {
	s.setBool(KeyWhitelistEnabled, enabled)
	return nil
}

func (s *MemoryStore) WhitelistNumbers(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.whitelist))
	for n := range s.whitelist {
		out = append(out, n)
	}
	return out, nil
}

func (s *MemoryStore) SetWhitelistNumbers(ctx context.Context, numbers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.whitelist = make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		s.whitelist[n] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) AddWhitelistNumber(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.whitelist[number] = struct{}{}
	return nil
}

func (s *MemoryStore) RemoveWhitelistNumber(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.whitelist, number)
	return nil
}

func (s *MemoryStore) ScheduledModeEnabled(ctx context.Context) (bool, error) {
	return s.getBool(KeyScheduledEnabled), nil
}

func (s *MemoryStore) SetScheduledModeEnabled(ctx context.Context, enabled bool) error {
	s.setBool(KeyScheduledEnabled, enabled)
	return nil
}

func (s *MemoryStore) ScheduleStart(ctx context.Context) (screening.TimeOfDay, error) {
	if raw, ok := s.getScalar(KeyScheduleStartTime); ok {
		if t, err := screening.ParseTimeOfDay(raw); err == nil {
			return t, nil
		}
	}
	return Defaults().ScheduleStart, nil
}

func (s *MemoryStore) SetScheduleStart(ctx context.Context, t screening.TimeOfDay) error {
	s.setScalar(KeyScheduleStartTime, t.String())
	return nil
}

func (s *MemoryStore) ScheduleEnd(ctx context.Context) (screening.TimeOfDay, error) {
	if raw, ok := s.getScalar(KeyScheduleEndTime); ok {
		if t, err := screening.ParseTimeOfDay(raw); err == nil {
			return t, nil
		}
	}
	return Defaults().ScheduleEnd, nil
}

func (s *MemoryStore) SetScheduleEnd(ctx context.Context, t screening.TimeOfDay) error {
	s.setScalar(KeyScheduleEndTime, t.String())
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
