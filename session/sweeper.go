package session

import (
	"context"
	"time"

	"github.com/phuslu/log"
)

type Sweeper struct {
	store    *Store
	interval time.Duration
	maxIdle  time.Duration
	logger   *log.Logger
	observe  func(active int)
}

// NewSweeper builds a sweeper; observe, when not nil, receives the live
// session count after every pass.
func NewSweeper(store *Store, interval, maxIdle time.Duration, logger *log.Logger, observe func(active int)) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		maxIdle:  maxIdle,
		logger:   logger,
		observe:  observe,
	}
}

// Start blocks until ctx is done.
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Dur("max_idle", s.maxIdle).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Sweeper) tick() {
	removed := s.store.Sweep(s.maxIdle)
	active := s.store.Len()
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Int("active", active).Msg("idle sessions dropped")
	}
	if s.observe != nil {
		s.observe(active)
	}
}
