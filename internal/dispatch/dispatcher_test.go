package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/EventBookingCore/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestDispatcher_RunsAllEffects(t *testing.T) {
	d := New(2, time.Second, newTestLogger(t))

	var ran atomic.Int32
	for i := 0; i < 10; i++ {
		d.Submit(context.Background(), ports.SideEffect{
			Name: "count",
			Run: func(ctx context.Context) error {
				ran.Add(1)
				return nil
			},
		})
	}
	d.Wait()

	assert.Equal(t, int32(10), ran.Load())
}

func TestDispatcher_SwallowsFailuresAndPanics(t *testing.T) {
	d := New(1, 0, newTestLogger(t))

	var after atomic.Bool
	d.Submit(context.Background(), ports.SideEffect{
		Name: "fails",
		Run:  func(ctx context.Context) error { return errors.New("smtp down") },
	})
	d.Submit(context.Background(), ports.SideEffect{
		Name: "panics",
		Run:  func(ctx context.Context) error { panic("boom") },
	})
	d.Submit(context.Background(), ports.SideEffect{
		Name: "after",
		Run: func(ctx context.Context) error {
			after.Store(true)
			return nil
		},
	})
	d.Wait()

	assert.True(t, after.Load())
}

func TestDispatcher_DetachesFromCallerContext(t *testing.T) {
	d := New(1, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ctxErr error
	d.Submit(ctx, ports.SideEffect{
		Name: "detached",
		Run: func(ctx context.Context) error {
			ctxErr = ctx.Err()
			return nil
		},
	})
	d.Wait()

	assert.NoError(t, ctxErr)
}

func TestDispatcher_ShutdownTimesOut(t *testing.T) {
	d := New(1, 0, newTestLogger(t))

	release := make(chan struct{})
	d.Submit(context.Background(), ports.SideEffect{
		Name: "slow",
		Run: func(ctx context.Context) error {
			<-release
			return nil
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, d.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, d.Shutdown(context.Background()))
}
