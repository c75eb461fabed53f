// Package dispatch runs post-commit side effects (group membership changes,
// notifications) on a bounded set of goroutines.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

type Dispatcher struct {
	group   errgroup.Group
	timeout time.Duration
	logger  logger.Logger
}

// New creates a dispatcher running at most workers effects at once. Each
// effect gets timeout to finish, zero means no limit.
func New(workers int, timeout time.Duration, log logger.Logger) *Dispatcher {
	d := &Dispatcher{
		timeout: timeout,
		logger:  log,
	}
	if workers > 0 {
		d.group.SetLimit(workers)
	}
	return d
}

// Submit schedules the effect. It blocks only while all workers are busy.
// Failures are logged, never returned: the booking change is already final.
func (d *Dispatcher) Submit(ctx context.Context, effect ports.SideEffect) {
	ctx = context.WithoutCancel(ctx)

	d.group.Go(func() error {
		d.run(ctx, effect)
		return nil
	})
}

func (d *Dispatcher) run(ctx context.Context, effect ports.SideEffect) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("side effect panicked",
				logger.String("effect", effect.Name),
				logger.String("event_id", effect.EventID),
				logger.String("user_id", effect.UserID),
				logger.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := effect.Run(ctx); err != nil {
		d.logger.Error("side effect failed",
			logger.String("effect", effect.Name),
			logger.String("event_id", effect.EventID),
			logger.String("user_id", effect.UserID),
			logger.String("error", err.Error()),
		)
	}
}

// Wait blocks until every submitted effect has finished.
func (d *Dispatcher) Wait() {
	_ = d.group.Wait()
}

// Shutdown waits for pending effects or for ctx to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatcher shutdown: %w", ctx.Err())
	}
}
