package scheduler

import (
	"context"
	"time"

	"ContentEngine/internal/ports"
)

// TickerScheduler is a lightweight placeholder scheduler using time.Ticker.
type TickerScheduler struct {
	spec     string
	interval time.Duration
	stop     chan struct{}
}

var _ ports.Scheduler = (*TickerScheduler)(nil)

// NewTickerScheduler builds a scheduler configured via cron expression string.
// The expression is kept for a future real cron driver; the ticker fires daily.
func NewTickerScheduler(spec string) *TickerScheduler {
	return &TickerScheduler{spec: spec, interval: 24 * time.Hour}
}

// Start begins ticking. The job runs once immediately, then on each tick.
func (s *TickerScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if s.stop != nil {
		return nil
	}

	s.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		job(time.Now())
		for {
			select {
			case t := <-ticker.C:
				job(t)
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (s *TickerScheduler) Stop(ctx context.Context) error {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	s.stop = nil
	return nil
}
