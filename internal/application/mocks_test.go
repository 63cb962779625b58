package application_test

import (
	"context"
	"sync"

	"github.com/guijosegon/portfolio/internal/domain/model"
)

// --- Mock implementations ---

type mockStore struct {
	mu     sync.Mutex
	values map[string]string
	sets   []string
	getErr error
	setErr error
}

func newMockStore(values map[string]string) *mockStore {
	if values == nil {
		values = map[string]string{}
	}
	return &mockStore{values: values}
}

func (m *mockStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.sets = append(m.sets, key)
	return nil
}

func (m *mockStore) value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

type mockGitHubClient struct {
	mu       sync.Mutex
	calls    int
	accounts []string
	listFn   func(ctx context.Context, account string) ([]model.Repository, error)
}

func (m *mockGitHubClient) ListUserRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	m.mu.Lock()
	m.calls++
	m.accounts = append(m.accounts, account)
	m.mu.Unlock()
	return m.listFn(ctx, account)
}

func (m *mockGitHubClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
