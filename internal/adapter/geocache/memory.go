// Package geocache holds the backends for resolved location keys.
package geocache

import (
	"context"
	"sync"
)

// Memory is an unbounded in-process cache. The key space (supported cities)
// is small and slow-changing, so nothing is evicted.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(_ context.Context, key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
}

// Len reports the number of cached keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
