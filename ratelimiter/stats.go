package ratelimiter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/contactform/contactapi/helpers/handlers"
)

// StatsEvent describes one admission decision.
type StatsEvent struct {
	Key     string
	Allowed bool
	Method  string
	Path    string
	At      time.Time
}

// StatsStore records admission decisions. Recording is best effort and must
// never influence the decision itself.
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

// DefaultMaxTrackedKeys bounds the per-client table. Clients seen after the
// table is full are counted under OverflowKey.
const (
	DefaultMaxTrackedKeys = 10000
	OverflowKey           = "other"
)

type Counters struct {
	Allowed int64 `json:"allowed"`
	Denied  int64 `json:"denied"`
}

// StatsSnapshot is the JSON view served by MemoryStatsStore.
type StatsSnapshot struct {
	Total  Counters            `json:"total"`
	Routes map[string]Counters `json:"routes"`
	Keys   map[string]Counters `json:"keys,omitempty"`
}

type MemoryStatsStore struct {
	mu        sync.Mutex
	total     Counters
	byRoute   map[string]Counters
	byKey     map[string]Counters
	trackKeys bool
	maxKeys   int
}

var (
	_ StatsStore   = &MemoryStatsStore{}
	_ http.Handler = &MemoryStatsStore{}
)

func NewMemoryStatsStore(trackKeys bool) *MemoryStatsStore {
	return &MemoryStatsStore{
		byRoute:   make(map[string]Counters),
		byKey:     make(map[string]Counters),
		trackKeys: trackKeys,
		maxKeys:   DefaultMaxTrackedKeys,
	}
}

// WithMaxTrackedKeys changes the per-client table bound.
func (s *MemoryStatsStore) WithMaxTrackedKeys(maxKeys int) *MemoryStatsStore {
	if maxKeys > 0 {
		s.maxKeys = maxKeys
	}
	return s
}

func (s *MemoryStatsStore) Record(_ context.Context, ev StatsEvent) error {
	route := ev.Method + " " + ev.Path

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = count(s.total, ev.Allowed)
	s.byRoute[route] = count(s.byRoute[route], ev.Allowed)
	if s.trackKeys {
		key := ev.Key
		if _, seen := s.byKey[key]; !seen && len(s.byKey) >= s.maxKeys {
			key = OverflowKey
		}
		s.byKey[key] = count(s.byKey[key], ev.Allowed)
	}
	return nil
}

func count(c Counters, allowed bool) Counters {
	if allowed {
		c.Allowed++
	} else {
		c.Denied++
	}
	return c
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStatsStore) ByRoute() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byRoute))
	for k, v := range s.byRoute {
		out[k] = v
	}
	return out
}

func (s *MemoryStatsStore) ByKey() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byKey))
	for k, v := range s.byKey {
		out[k] = v
	}
	return out
}

func (s *MemoryStatsStore) Snapshot() StatsSnapshot {
	snapshot := StatsSnapshot{Total: s.Total(), Routes: s.ByRoute()}
	if s.trackKeys {
		snapshot.Keys = s.ByKey()
	}
	return snapshot
}

func (s *MemoryStatsStore) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSONResponse(w, http.StatusOK, s.Snapshot())
}
