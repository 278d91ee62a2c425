package ratelimiter

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const (
	DefaultStatsBufferSize    = 1024
	DefaultStatsRecordTimeout = 500 * time.Millisecond
)

var ErrStatsBufferFull = errors.New("admission stats buffer is full")

// AsyncStatsStore takes events off the request path. Record only enqueues; a
// background runner hands each event to the wrapped store with its own timeout.
// Events that do not fit in the buffer are dropped.
type AsyncStatsStore struct {
	next    StatsStore
	events  chan StatsEvent
	timeout time.Duration
	dropped atomic.Int64
	logger  lager.Logger
}

var _ StatsStore = &AsyncStatsStore{}

func NewAsyncStatsStore(next StatsStore, bufferSize int, timeout time.Duration, logger lager.Logger) *AsyncStatsStore {
	if bufferSize <= 0 {
		bufferSize = DefaultStatsBufferSize
	}
	if timeout <= 0 {
		timeout = DefaultStatsRecordTimeout
	}
	return &AsyncStatsStore{
		next:    next,
		events:  make(chan StatsEvent, bufferSize),
		timeout: timeout,
		logger:  logger.Session("async-stats"),
	}
}

func (s *AsyncStatsStore) Record(_ context.Context, ev StatsEvent) error {
	select {
	case s.events <- ev:
		return nil
	default:
		s.dropped.Add(1)
		return ErrStatsBufferFull
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (s *AsyncStatsStore) Dropped() int64 {
	return s.dropped.Load()
}

func (s *AsyncStatsStore) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)
	s.logger.Info("started", lager.Data{"buffer_size": cap(s.events), "timeout": s.timeout})

	for {
		select {
		case <-signals:
			s.logger.Info("stopped", lager.Data{"pending": len(s.events), "dropped": s.Dropped()})
			return nil
		case ev := <-s.events:
			s.flush(ev)
		}
	}
}

func (s *AsyncStatsStore) flush(ev StatsEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.next.Record(ctx, ev); err != nil {
		s.logger.Error("failed-to-record-admission", err, lager.Data{"key": ev.Key})
	}
}
