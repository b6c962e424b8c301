package otpcache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a map-with-expiry Store for local runs and tests. Expired
// entries are dropped on read.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
	}
}

func (s *MemoryStore) set(key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *MemoryStore) get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return nil, false
	}
	return e.value, true
}

func (s *MemoryStore) StageData(_ context.Context, email string, payload []byte, ttl time.Duration) error {
	s.set(dataKey(email), payload, ttl)
	return nil
}

func (s *MemoryStore) StageOtp(_ context.Context, email string, code string, ttl time.Duration) error {
	s.set(otpKey(email), []byte(code), ttl)
	return nil
}

func (s *MemoryStore) Data(_ context.Context, email string) ([]byte, bool, error) {
	payload, ok := s.get(dataKey(email))
	return payload, ok, nil
}

func (s *MemoryStore) Otp(_ context.Context, email string) (string, bool, error) {
	code, ok := s.get(otpKey(email))
	return string(code), ok, nil
}

func (s *MemoryStore) Clear(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, dataKey(email))
	delete(s.data, otpKey(email))
	return nil
}
