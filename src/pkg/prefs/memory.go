package prefs

import (
	"fmt"
	"strconv"
	"sync"
)

// MemoryStore is an in-process Store used by tests and one-shot tooling that
// does not need durability.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) GetBool(key string, fallback bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, found := s.values[key]
	if !found {
		return fallback, nil
	}

	value, parseErr := strconv.ParseBool(raw)
	if parseErr != nil {
		return false, fmt.Errorf("corrupt boolean preference %q: %w", key, parseErr)
	}
	return value, nil
}

func (s *MemoryStore) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = strconv.FormatBool(value)
	return nil
}

func (s *MemoryStore) GetString(key string, fallback string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, found := s.values[key]
	if !found {
		return fallback, nil
	}
	return raw, nil
}

func (s *MemoryStore) SetString(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
