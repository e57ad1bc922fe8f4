package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Poller re-fetches the dashboard dataset on a fixed interval so staff
// see new submissions without reloading. Stop is deterministic: it
// cancels the loop and waits for it to exit.
type Poller struct {
	dashboard *DashboardService
	interval  time.Duration
	logger    *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(dashboard *DashboardService, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{dashboard: dashboard, interval: interval, logger: logger}
}

// Start launches the refresh loop. A non-positive interval disables it.
func (p *Poller) Start(ctx context.Context) {
	if p.interval <= 0 || p.done != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// in-flight user refreshes win; the tick is dropped
				if _, err := p.dashboard.Refresh(ctx); err != nil && !errors.Is(err, ErrFetchInFlight) {
					p.logger.Warn("background refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil
}
