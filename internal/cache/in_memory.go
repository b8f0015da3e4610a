package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	v      V
	expiry time.Time
}

// InMemory is a TTL cache. A zero or negative ttl disables caching: Set is
// a no-op and Get always misses.
type InMemory[K comparable, V any] struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[K]item[V]
	done chan struct{}
	once sync.Once
}

func NewInMemory[K comparable, V any](ttl time.Duration) *InMemory[K, V] {
	c := &InMemory[K, V]{
		data: make(map[K]item[V]),
		ttl:  ttl,
		now:  time.Now,
		done: make(chan struct{}),
	}

	if ttl > 0 {
		go c.clean(cleanInterval(ttl))
	}
	return c
}

func (m *InMemory[K, V]) Set(key K, val V) {
	if m.ttl <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = item[V]{
		v:      val,
		expiry: m.now().Add(m.ttl),
	}
}

func (m *InMemory[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, found := m.data[key]
	if !found || m.now().After(val.expiry) {
		var v V
		return v, false
	}
	return val.v, true
}

func (m *InMemory[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close stops the background cleaner. It is safe to call more than once.
func (m *InMemory[K, V]) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *InMemory[K, V]) clean(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-t.C:
			m.evict()
		}
	}
}

func (m *InMemory[K, V]) evict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, v := range m.data {
		if now.After(v.expiry) {
			delete(m.data, k)
		}
	}
}

func cleanInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/2, time.Second), time.Minute)
}
