package storage

import (
	"context"
	"sync"

	"github.com/diyahomestylist/poppyandteal/cartstore"
)

// Memory keeps values in a map. Nothing survives a restart; it is meant for development
// and tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	feed   localFeed
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", cartstore.ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	m.feed.publish(cartstore.Change{Key: key, Origin: cartstore.OriginFrom(ctx)})
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	m.feed.publish(cartstore.Change{Key: key, Origin: cartstore.OriginFrom(ctx)})
	return nil
}

func (m *Memory) Watch(ctx context.Context, fn func(cartstore.Change)) error {
	return m.feed.watch(ctx, fn)
}

func (m *Memory) Close() error { return nil }
