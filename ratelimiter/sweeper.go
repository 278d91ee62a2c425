package ratelimiter

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

// Sweeper periodically evicts records whose window has ended. The limiter resets
// stale records on access, so the sweep only bounds memory.
type Sweeper struct {
	store    Store
	interval time.Duration
	clock    clock.Clock
	logger   lager.Logger
}

func NewSweeper(store Store, interval time.Duration, clock clock.Clock, logger lager.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (s *Sweeper) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := s.clock.NewTicker(s.interval)
	close(ready)

	s.logger.Info("started", lager.Data{"sweep_interval": s.interval})

	for {
		select {
		case <-signals:
			ticker.Stop()
			s.logger.Info("stopped")
			return nil
		case <-ticker.C():
			s.Sweep()
		}
	}
}

func (s *Sweeper) Sweep() {
	removed := s.store.Sweep(s.clock.Now())
	if removed > 0 {
		s.logger.Info("removed-expired-records", lager.Data{"removed": removed, "remaining": s.store.Len()})
	}
}
