package ui

import (
	"testing"
	"time"

	"github.com/dminhvu/GSD-222/internal/ledger"
)

func newTestStore(t *testing.T, ttl time.Duration) *ResultStore {
	t.Helper()
	st := NewResultStore(ttl)
	t.Cleanup(st.Close)
	return st
}

func TestStoreRoundTrip(t *testing.T) {
	st := newTestStore(t, time.Minute)

	entry := &ResultEntry{
		SourceName: "ledger.csv",
		CSV:        []byte("Debtor Reference\n"),
		Table:      &ledger.NormalizedTable{},
	}
	id := st.Put(entry)
	if id == "" {
		t.Fatal("Put() returned empty id")
	}

	got, ok := st.Get(id)
	if !ok {
		t.Fatal("Get() did not find stored entry")
	}
	if got.SourceName != "ledger.csv" {
		t.Errorf("SourceName = %q, want ledger.csv", got.SourceName)
	}
	if got.ID != id {
		t.Errorf("ID = %q, want %q", got.ID, id)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}

func TestStoreDistinctIDs(t *testing.T) {
	st := newTestStore(t, time.Minute)

	first := st.Put(&ResultEntry{SourceName: "a.csv"})
	second := st.Put(&ResultEntry{SourceName: "b.csv"})
	if first == second {
		t.Fatalf("Put() reused id %q", first)
	}
}

func TestStoreExpiredEntryReadsAsMissing(t *testing.T) {
	st := newTestStore(t, time.Minute)

	entry := &ResultEntry{SourceName: "old.csv"}
	id := st.Put(entry)
	entry.CreatedAt = time.Now().Add(-2 * time.Minute)

	if _, ok := st.Get(id); ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestStoreEvictsExpiredEntries(t *testing.T) {
	st := newTestStore(t, time.Minute)

	stale := &ResultEntry{SourceName: "stale.csv"}
	st.Put(stale)
	stale.CreatedAt = time.Now().Add(-2 * time.Minute)

	fresh := st.Put(&ResultEntry{SourceName: "fresh.csv"})

	if evicted := st.evictExpired(); evicted != 1 {
		t.Errorf("evictExpired() = %d, want 1", evicted)
	}
	if st.Len() != 1 {
		t.Errorf("Len() after eviction = %d, want 1", st.Len())
	}
	if _, ok := st.Get(fresh); !ok {
		t.Error("eviction removed a live entry")
	}
}
