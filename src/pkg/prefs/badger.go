package prefs

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore implements Store on top of a badger database so that
// preferences survive process restarts.
type BadgerStore struct {
	db *badger.DB
	mu sync.RWMutex
}

func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger logging
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference database: %w", err)
	}

	return &BadgerStore{
		db: db,
	}, nil
}

func (s *BadgerStore) get(key string) (value []byte, found bool, err error) {
	viewErr := s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get([]byte(key))
		if getErr != nil {
			if getErr == badger.ErrKeyNotFound {
				return nil
			}
			return getErr
		}
		return item.Value(func(val []byte) error {
			value = append([]byte(nil), val...)
			found = true
			return nil
		})
	})
	if viewErr != nil {
		return nil, false, viewErr
	}
	return value, found, nil
}

func (s *BadgerStore) set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *BadgerStore) GetBool(key string, fallback bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, found, err := s.get(key)
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if !found {
		return fallback, nil
	}

	value, parseErr := strconv.ParseBool(string(raw))
	if parseErr != nil {
		return false, fmt.Errorf("corrupt boolean preference %q: %w", key, parseErr)
	}
	return value, nil
}

func (s *BadgerStore) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(key, []byte(strconv.FormatBool(value)))
}

func (s *BadgerStore) GetString(key string, fallback string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, found, err := s.get(key)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	if !found {
		return fallback, nil
	}
	return string(raw), nil
}

func (s *BadgerStore) SetString(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.set(key, []byte(value))
}

func (s *BadgerStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close closes the database connection
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
