package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"order-up/internal/app/core"
	"order-up/internal/domain/models"
	"order-up/pkg/logger"
)

// memStore is an in-memory core.Store for manager tests. It round-trips
// through JSON like the real backends do.
type memStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	failLoad bool
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, collection string, v any) error {
	if m.failLoad {
		return fmt.Errorf("%w: load %s: boom", core.ErrStoreFailure, collection)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[collection]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func (m *memStore) Save(_ context.Context, collection string, v any) error {
	if m.failSave {
		return fmt.Errorf("%w: save %s: boom", core.ErrStoreFailure, collection)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = raw
	return nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[collection]
	if !ok {
		return 0
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return -1
	}
	return len(records)
}

type fakePublisher struct {
	mu        sync.Mutex
	published []models.Order
	fail      bool
}

func (p *fakePublisher) PublishOrderCreated(_ context.Context, order models.Order) error {
	if p.fail {
		return fmt.Errorf("channel closed")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, order)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func testLogger() logger.Logger {
	l, err := logger.New("disabled")
	if err != nil {
		panic(err)
	}
	return l
}
