package filterstate

import (
	"context"
	"log"
	"time"

	"talentflow-be/pkg/matching"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore is the in-process fallback used when Redis is unavailable and
// by tests. Entries survive the process, not restarts.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(24*time.Hour, 10*time.Minute),
	}
}

func (s *MemoryStore) Save(_ context.Context, ownerId uuid.UUID, c matching.Criteria) error {
	key := KeyPrefix + ownerId.String()
	data, ok := Encode(c)
	if !ok {
		s.cache.Delete(key)
		return nil
	}
	s.cache.Set(key, data, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Load(_ context.Context, ownerId uuid.UUID) (matching.Criteria, error) {
	key := KeyPrefix + ownerId.String()
	x, found := s.cache.Get(key)
	if !found {
		return matching.DefaultCriteria(), nil
	}
	data, ok := x.([]byte)
	if !ok {
		return matching.DefaultCriteria(), nil
	}
	c, ok := Decode(data)
	if !ok {
		log.Printf("[WARN] Corrupt persisted filters for %s, using defaults", ownerId)
		// Drop the bad entry so it does not warn on every load.
		s.cache.Delete(key)
	}
	return c, nil
}

func (s *MemoryStore) Clear(_ context.Context, ownerId uuid.UUID) error {
	s.cache.Delete(KeyPrefix + ownerId.String())
	return nil
}

// seed is a test hook for injecting raw payloads (including corrupt ones).
func (s *MemoryStore) seed(ownerId uuid.UUID, raw []byte) {
	s.cache.Set(KeyPrefix+ownerId.String(), raw, cache.DefaultExpiration)
}
