package store

import (
	"sync"

	"github.com/subscope-dev/subscope/internal/model"
)

// Store is the persistence contract for the merchant cache and ranking
// overrides. Any keyed map works as long as reads reflect the most recent
// write within the process.
type Store interface {
	GetMerchant(key string) (model.CacheEntry, bool, error)
	PutMerchant(key string, entry model.CacheEntry) error

	GetOverride(subscriptionID string) (model.RankingOverride, bool, error)
	PutOverride(o model.RankingOverride) error
	DeleteOverride(subscriptionID string) error
	Overrides() ([]model.RankingOverride, error)
}

// MemoryStore is an in-process Store used in tests and as the default when no
// data directory is configured.
type MemoryStore struct {
	mu        sync.Mutex
	merchants map[string]model.CacheEntry
	overrides map[string]model.RankingOverride
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		merchants: make(map[string]model.CacheEntry),
		overrides: make(map[string]model.RankingOverride),
	}
}

// GetMerchant returns the cached resolution for a normalized key.
func (s *MemoryStore) GetMerchant(key string) (model.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.merchants[key]
	return e, ok, nil
}

// PutMerchant stores a resolution under a normalized key.
func (s *MemoryStore) PutMerchant(key string, entry model.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants[key] = entry
	return nil
}

// GetOverride returns the ranking override for a subscription ID.
func (s *MemoryStore) GetOverride(subscriptionID string) (model.RankingOverride, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.overrides[subscriptionID]
	return o, ok, nil
}

// PutOverride stores a ranking override.
func (s *MemoryStore) PutOverride(o model.RankingOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[o.SubscriptionID] = o
	return nil
}

// DeleteOverride removes a ranking override if present.
func (s *MemoryStore) DeleteOverride(subscriptionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, subscriptionID)
	return nil
}

// Overrides returns all stored overrides.
func (s *MemoryStore) Overrides() ([]model.RankingOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.RankingOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		out = append(out, o)
	}
	return out, nil
}
