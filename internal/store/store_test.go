package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subscope-dev/subscope/internal/model"
)

// both backends must satisfy the same contract.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	bs, err := OpenBolt(filepath.Join(t.TempDir(), "subscope.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bs.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   bs,
	}
}

func TestMerchantRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.GetMerchant("NETFLIX COM")
			require.NoError(t, err)
			assert.False(t, ok)

			entry := model.CacheEntry{
				Vendor:         "Netflix",
				Source:         model.SourcePattern,
				Category:       model.CategoryEntertainment,
				IsSubscription: true,
				LastSeen:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				HitCount:       1,
			}
			require.NoError(t, s.PutMerchant("NETFLIX COM", entry))

			got, ok, err := s.GetMerchant("NETFLIX COM")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, entry.Vendor, got.Vendor)
			assert.Equal(t, entry.Source, got.Source)
			assert.True(t, got.IsSubscription)
			assert.Equal(t, 1, got.HitCount)
		})
	}
}

func TestMerchantUpdateVisible(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			e := model.CacheEntry{Vendor: "Spotify", Source: model.SourceAI, HitCount: 1}
			require.NoError(t, s.PutMerchant("SPOTIFY", e))

			e.HitCount = 2
			e.Source = model.SourceUser
			require.NoError(t, s.PutMerchant("SPOTIFY", e))

			got, ok, err := s.GetMerchant("SPOTIFY")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, 2, got.HitCount)
			assert.Equal(t, model.SourceUser, got.Source)
		})
	}
}

func TestOverrideLifecycle(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			o := model.RankingOverride{
				SubscriptionID: "sub_netflix",
				Importance:     1,
				UserNote:       "cancel this",
				UpdatedAt:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			require.NoError(t, s.PutOverride(o))

			got, ok, err := s.GetOverride("sub_netflix")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, 1, got.Importance)
			assert.Equal(t, "cancel this", got.UserNote)

			all, err := s.Overrides()
			require.NoError(t, err)
			require.Len(t, all, 1)

			require.NoError(t, s.DeleteOverride("sub_netflix"))
			_, ok, err = s.GetOverride("sub_netflix")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
