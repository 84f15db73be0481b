package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nihatdadaloglu/oda/pkg/async"
	"github.com/nihatdadaloglu/oda/pkg/logger"
)

type countingMailer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *countingMailer) Send(context.Context, string, string, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

func TestDispatcher_FailureIsNotRetried(t *testing.T) {
	worker := async.NewWorker(4, logger.NewNop())
	worker.Start(1)
	mailer := &countingMailer{err: errors.New("smtp down")}
	d := NewDispatcher(worker, mailer, logger.NewNop())

	assert.True(t, d.Notify("admin@example.com", "konu", "<p>x</p>"))
	worker.Stop()

	assert.Equal(t, 1, mailer.calls)
}

func TestDispatcher_EmptyRecipient(t *testing.T) {
	worker := async.NewWorker(1, logger.NewNop())
	d := NewDispatcher(worker, &countingMailer{}, logger.NewNop())

	assert.False(t, d.Notify("", "konu", "x"))
	worker.Start(1)
	worker.Stop()
}
