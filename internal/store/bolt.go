package store

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/subscope-dev/subscope/internal/model"
)

var (
	merchantBucket = []byte("merchants")
	overrideBucket = []byte("overrides")
)

// BoltStore persists the merchant cache and ranking overrides in a single
// bolt file, gob-encoded.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) a bolt database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(merchantBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(overrideBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// GetMerchant returns the cached resolution for a normalized key.
func (s *BoltStore) GetMerchant(key string) (model.CacheEntry, bool, error) {
	var entry model.CacheEntry
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(merchantBucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&entry); err != nil {
			return fmt.Errorf("decoding cache entry %q: %w", key, err)
		}
		found = true
		return nil
	})
	return entry, found, err
}

// PutMerchant stores a resolution under a normalized key.
func (s *BoltStore) PutMerchant(key string, entry model.CacheEntry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(entry); err != nil {
			return fmt.Errorf("encoding cache entry %q: %w", key, err)
		}
		return tx.Bucket(merchantBucket).Put([]byte(key), buf.Bytes())
	})
}

// GetOverride returns the ranking override for a subscription ID.
func (s *BoltStore) GetOverride(subscriptionID string) (model.RankingOverride, bool, error) {
	var o model.RankingOverride
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(overrideBucket).Get([]byte(subscriptionID))
		if v == nil {
			return nil
		}
		if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&o); err != nil {
			return fmt.Errorf("decoding override %q: %w", subscriptionID, err)
		}
		found = true
		return nil
	})
	return o, found, err
}

// PutOverride stores a ranking override.
func (s *BoltStore) PutOverride(o model.RankingOverride) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(o); err != nil {
			return fmt.Errorf("encoding override %q: %w", o.SubscriptionID, err)
		}
		return tx.Bucket(overrideBucket).Put([]byte(o.SubscriptionID), buf.Bytes())
	})
}

// DeleteOverride removes a ranking override if present.
func (s *BoltStore) DeleteOverride(subscriptionID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(overrideBucket).Delete([]byte(subscriptionID))
	})
}

// Overrides returns all stored overrides.
func (s *BoltStore) Overrides() ([]model.RankingOverride, error) {
	var out []model.RankingOverride
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(overrideBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var o model.RankingOverride
			if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&o); err != nil {
				return fmt.Errorf("decoding override %q: %w", k, err)
			}
			out = append(out, o)
		}
		return nil
	})
	return out, err
}
