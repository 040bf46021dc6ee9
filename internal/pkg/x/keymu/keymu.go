// Package keymu provides a mutex keyed by string. Entries are reference
// counted and removed once no goroutine holds or waits on them.
package keymu

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Mutex serializes work per key. The zero value is ready to use.
type Mutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// Lock acquires the lock for key and returns the function that releases it.
func (m *Mutex) Lock(key string) (unlock func()) {
	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[string]*entry)
	}

	e, ok := m.entries[key]
	if !ok {
		e = new(entry)
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.entries, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or awaited.
func (m *Mutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
