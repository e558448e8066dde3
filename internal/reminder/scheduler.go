// Package reminder nudges the user to write today's record.
package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Reminder is the part of the journal the scheduler drives.
type Reminder interface {
	RemindIfDue(ctx context.Context) bool
}

// Scheduler checks once per interval whether the daily reminder is due.
type Scheduler struct {
	mu       sync.RWMutex
	journal  Reminder
	interval time.Duration
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewScheduler(j Reminder, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		journal:  j,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the scheduler loop. It checks once immediately.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.tick(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.RLock()
	cancel := s.cancel
	done := s.done
	s.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.journal.RemindIfDue(ctx) {
		s.logger.Info("record reminder sent")
	}
}
