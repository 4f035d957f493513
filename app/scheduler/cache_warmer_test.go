package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWarmer struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (f *fakeWarmer) WarmDaypartCache(ctx context.Context) (int, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return 3, f.err
}

func TestCacheWarmerRunOnce(t *testing.T) {
	warmer := &fakeWarmer{}
	w := NewCacheWarmer(warmer, "@every 1h", time.Second, nil)

	w.RunOnce(context.Background())
	assert.Equal(t, int32(1), warmer.calls.Load())

	warmer.err = errors.New("redis down")
	w.RunOnce(context.Background())
	assert.Equal(t, int32(2), warmer.calls.Load())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.RunOnce(ctx)
	assert.Equal(t, int32(2), warmer.calls.Load(), "cancelled context skips the run")
}

func TestCacheWarmerSkipsOverlappingRuns(t *testing.T) {
	warmer := &fakeWarmer{release: make(chan struct{})}
	w := NewCacheWarmer(warmer, "@every 1h", time.Minute, nil)

	done := make(chan struct{})
	go func() {
		w.RunOnce(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool { return warmer.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	w.RunOnce(context.Background())
	assert.Equal(t, int32(1), warmer.calls.Load())

	close(warmer.release)
	<-done
	w.RunOnce(context.Background())
	assert.Equal(t, int32(2), warmer.calls.Load())
}

func TestCacheWarmerStart(t *testing.T) {
	t.Run("InvalidSpec", func(t *testing.T) {
		w := NewCacheWarmer(&fakeWarmer{}, "every now and then", time.Second, nil)
		stop, err := w.Start(context.Background())
		require.Error(t, err)
		assert.Nil(t, stop)
	})

	t.Run("WarmsImmediately", func(t *testing.T) {
		warmer := &fakeWarmer{}
		w := NewCacheWarmer(warmer, "@every 1h", time.Second, nil)
		stop, err := w.Start(context.Background())
		require.NoError(t, err)
		defer stop()

		assert.Eventually(t, func() bool { return warmer.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("SecondsFieldAccepted", func(t *testing.T) {
		w := NewCacheWarmer(&fakeWarmer{}, "*/30 * * * * *", time.Second, nil)
		stop, err := w.Start(context.Background())
		require.NoError(t, err)
		stop()
	})
}
