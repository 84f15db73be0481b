package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/model"
)

type memoryFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemoryFileStore() *memoryFileStore {
	return &memoryFileStore{files: make(map[string][]byte)}
}

func (m *memoryFileStore) Save(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
	return nil
}

type sentNotification struct {
	To, Subject, Body string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (r *recordingNotifier) Notify(to, subject, body string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentNotification{to, subject, body})
	return true
}

type mapUsers map[string]*model.User

func (m mapUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m[email]; ok {
		return u, nil
	}
	return nil, apperror.ErrNotFound
}

type failingUsers struct{}

func (failingUsers) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, errors.New("connection refused")
}
