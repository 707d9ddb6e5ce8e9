package ui

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dminhvu/GSD-222/internal/ledger"
)

// ResultEntry is one stored normalization artifact, keyed by a generated id.
type ResultEntry struct {
	ID         string
	SourceName string
	Table      *ledger.NormalizedTable
	CSV        []byte
	Summary    ledger.Summary
	CreatedAt  time.Time
}

// ResultStore keeps normalization results in memory until they expire.
type ResultStore struct {
	mu      sync.RWMutex
	entries map[string]*ResultEntry
	ttl     time.Duration
	stop    chan struct{}
}

// NewResultStore creates a store and starts its eviction loop.
func NewResultStore(ttl time.Duration) *ResultStore {
	st := &ResultStore{
		entries: make(map[string]*ResultEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go st.evictLoop()
	return st
}

// Put stores an entry under a fresh id and returns that id.
func (st *ResultStore) Put(entry *ResultEntry) string {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now()

	st.mu.Lock()
	st.entries[entry.ID] = entry
	st.mu.Unlock()

	return entry.ID
}

// Get returns a live entry. Entries past their TTL read as missing even
// before the eviction loop removes them.
func (st *ResultStore) Get(id string) (*ResultEntry, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	entry, ok := st.entries[id]
	if !ok || time.Since(entry.CreatedAt) > st.ttl {
		return nil, false
	}
	return entry, true
}

// Len reports how many entries are currently held.
func (st *ResultStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}

// Close stops the eviction loop.
func (st *ResultStore) Close() {
	close(st.stop)
}

func (st *ResultStore) evictLoop() {
	interval := st.ttl / 2
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			if evicted := st.evictExpired(); evicted > 0 {
				log.Printf("[Store] Evicted %d expired results", evicted)
			}
		}
	}
}

func (st *ResultStore) evictExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	for id, entry := range st.entries {
		if time.Since(entry.CreatedAt) > st.ttl {
			delete(st.entries, id)
			evicted++
		}
	}
	return evicted
}
