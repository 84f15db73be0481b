package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nihatdadaloglu/oda/pkg/logger"
)

func TestWorker_RunsEachTaskOnce(t *testing.T) {
	w := NewWorker(10, logger.NewNop())
	w.Start(2)

	var calls int32
	for i := 0; i < 5; i++ {
		ok := w.TryAdd("count", func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			return errors.New("fails but is not retried")
		}, time.Second)
		assert.True(t, ok)
	}
	w.Stop()

	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestWorker_DropsWhenFull(t *testing.T) {
	w := NewWorker(1, logger.NewNop())

	noop := func(ctx context.Context) error { return nil }
	assert.True(t, w.TryAdd("first", noop, 0))
	assert.False(t, w.TryAdd("second", noop, 0))

	w.Start(1)
	w.Stop()
	assert.False(t, w.TryAdd("after-stop", noop, 0))
}

func TestWorker_RecoversPanic(t *testing.T) {
	w := NewWorker(2, logger.NewNop())
	w.Start(1)

	done := make(chan struct{})
	w.TryAdd("panics", func(ctx context.Context) error { panic("boom") }, 0)
	w.TryAdd("after", func(ctx context.Context) error { close(done); return nil }, 0)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive panic")
	}
	w.Stop()
}
