// Package clientstate implements the browser-side state conventions of the
// storefront: a local-storage-style key/value store holding the current user
// and the cart as plain JSON blobs, with a change notification so other open
// views can re-read counts.
package clientstate

import "sync"

// Storage is the minimal localStorage-shaped contract.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Memory is an in-process Storage with subscriber notification. Unlike the
// browser's storage event, notification also reaches the context that made
// the change; callers that mirror browser semantics must filter themselves.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
	subs []func(key string)
}

func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	m.data[key] = value
	subs := append([]func(string){}, m.subs...)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(key)
	}
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.data, key)
	subs := append([]func(string){}, m.subs...)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(key)
	}
}

// Subscribe registers a change listener; it receives the mutated key.
func (m *Memory) Subscribe(fn func(key string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}
