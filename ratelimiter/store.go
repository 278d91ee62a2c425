package ratelimiter

import (
	"sync"
	"time"
)

// Record counts the requests a client made in its current window.
type Record struct {
	Count     int
	ResetTime time.Time
}

func (r Record) Expired(now time.Time) bool {
	return now.After(r.ResetTime)
}

type Store interface {
	Get(key string) (Record, bool)
	Set(key string, record Record)
	Delete(key string)
	// Sweep removes every record whose window ended before now and reports how many were removed.
	Sweep(now time.Time) int
	Len() int
}

type InMemoryStore struct {
	storage map[string]Record
	sync.RWMutex
}

var _ Store = &InMemoryStore{}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		storage: make(map[string]Record),
	}
}

func (s *InMemoryStore) Get(key string) (Record, bool) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.storage[key]
	return v, ok
}

func (s *InMemoryStore) Set(key string, record Record) {
	s.Lock()
	defer s.Unlock()
	s.storage[key] = record
}

func (s *InMemoryStore) Delete(key string) {
	s.Lock()
	defer s.Unlock()
	delete(s.storage, key)
}

func (s *InMemoryStore) Sweep(now time.Time) int {
	s.Lock()
	defer s.Unlock()
	removed := 0
	for k, v := range s.storage {
		if v.Expired(now) {
			delete(s.storage, k)
			removed++
		}
	}
	return removed
}

func (s *InMemoryStore) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.storage)
}
