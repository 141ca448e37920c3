package cache

import (
	"sync"
	"time"
)

// MemoryStore is a simple in-memory key-value store with expiration
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]*memoryItem[T]
	stop  chan struct{}
	once  sync.Once
}

type memoryItem[T any] struct {
	value      T
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store that sweeps expired items every cleanupInterval
func NewMemoryStore[T any](cleanupInterval time.Duration) *MemoryStore[T] {
	store := &MemoryStore[T]{
		items: make(map[string]*memoryItem[T]),
		stop:  make(chan struct{}),
	}

	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(cleanupInterval)

	return store
}

// Set stores a key-value pair with expiration
func (ms *MemoryStore[T]) Set(key string, value T, expiration time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[key] = &memoryItem[T]{
		value:      value,
		expireTime: time.Now().Add(expiration),
	}
}

// Get retrieves a value by key (returns the zero value if not found or expired)
func (ms *MemoryStore[T]) Get(key string) (T, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var zero T
	item, exists := ms.items[key]
	if !exists {
		return zero, false
	}

	// Check if expired
	if time.Now().After(item.expireTime) {
		return zero, false
	}

	return item.value, true
}

// Delete removes a key
func (ms *MemoryStore[T]) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// size returns the number of stored items, expired ones included until the next sweep
func (ms *MemoryStore[T]) size() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.items)
}

// Close stops the cleanup goroutine
func (ms *MemoryStore[T]) Close() {
	ms.once.Do(func() { close(ms.stop) })
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore[T]) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.sweep()
		}
	}
}

func (ms *MemoryStore[T]) sweep() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, item := range ms.items {
		if now.After(item.expireTime) {
			delete(ms.items, key)
		}
	}
}
