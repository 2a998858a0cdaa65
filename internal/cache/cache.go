// Package cache de-duplicates analyses of identical resume/job text pairs.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries kept before the cache is reset
const DefaultCapacity = 200

// Cache is the store the analyzer reads from and writes to
type Cache[V any] interface {
	Get(key string) (V, bool)
	Put(key string, value V)
	Len() int
}

// Key derives the cache key for a text pair. The derivation is stable across
// releases: hex(SHA-256(resume + "|" + job)).
func Key(resumeText, jobText string) string {
	hash := sha256.Sum256([]byte(resumeText + "|" + jobText))
	return fmt.Sprintf("%x", hash)
}

// Stats describes the cache occupancy
type Stats struct {
	Entries  int `json:"entries"`
	Capacity int `json:"capacity"`
	Resets   int `json:"resets"`
}

// Memory is an in-process map guarded by a RWMutex. When a new key arrives
// at capacity the whole map is dropped before the insert.
type Memory[V any] struct {
	mu       sync.RWMutex
	entries  map[string]V
	capacity int
	resets   int
}

// NewMemory creates a cache holding at most capacity entries. A non-positive
// capacity selects DefaultCapacity.
func NewMemory[V any](capacity int) *Memory[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory[V]{
		entries:  make(map[string]V, capacity),
		capacity: capacity,
	}
}

// Get returns the value stored under key
func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Put stores value under key. Overwriting an existing key never evicts.
func (m *Memory[V]) Put(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.capacity {
		m.entries = make(map[string]V, m.capacity)
		m.resets++
	}
	m.entries[key] = value
}

// Len returns the number of stored entries
func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Clear drops every entry
func (m *Memory[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]V, m.capacity)
}

// Stats returns a snapshot of the cache occupancy
func (m *Memory[V]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{Entries: len(m.entries), Capacity: m.capacity, Resets: m.resets}
}
