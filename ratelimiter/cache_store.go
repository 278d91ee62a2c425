package ratelimiter

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheStore keeps records in a go-cache instance. Entries never expire on their
// own: a record's lifetime is decided by its reset time, so eviction is left to Sweep.
type CacheStore struct {
	cache *cache.Cache
}

var _ Store = &CacheStore{}

func NewCacheStore() *CacheStore {
	return &CacheStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *CacheStore) Get(key string) (Record, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return Record{}, false
	}
	record, ok := v.(Record)
	return record, ok
}

func (s *CacheStore) Set(key string, record Record) {
	s.cache.Set(key, record, cache.NoExpiration)
}

func (s *CacheStore) Delete(key string) {
	s.cache.Delete(key)
}

func (s *CacheStore) Sweep(now time.Time) int {
	removed := 0
	for k, item := range s.cache.Items() {
		record, ok := item.Object.(Record)
		if !ok || record.Expired(now) {
			s.cache.Delete(k)
			removed++
		}
	}
	return removed
}

func (s *CacheStore) Len() int {
	return s.cache.ItemCount()
}
