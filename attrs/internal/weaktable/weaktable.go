package weaktable

import (
	"runtime"
	"sync"
	"weak"
)

// Table is a side-table from record identity to a per-record value.
//
// Keys are held weakly: the table never extends the lifetime of a record, and
// an entry is removed by the runtime once no strong reference to its record
// remains anywhere else in the program. Values are held strongly and must not
// reference their own key, or the entry can never be reclaimed.
//
// All operations are serialized on a single lock; the table is shared across
// every record of a type, so concurrent access to entries of *different*
// records is safe. Read-modify-write of the *same* entry from multiple
// goroutines is not atomic across Get/Set.
type Table[K any, V any] struct {
	mu      sync.RWMutex
	entries map[weak.Pointer[K]]V
}

func New[K any, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[weak.Pointer[K]]V),
	}
}

// Get returns the value stored for key, if any.
func (t *Table[K, V]) Get(key *K) (V, bool) {
	wp := weak.Make(key)
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[wp]
	return v, ok
}

// Set inserts or overwrites the entry for key.
//
// The first insertion for a key registers a runtime cleanup that drops the
// entry once the key becomes unreachable.
func (t *Table[K, V]) Set(key *K, val V) {
	wp := weak.Make(key)

	t.mu.Lock()
	_, existed := t.entries[wp]
	t.entries[wp] = val
	t.mu.Unlock()

	if !existed {
		// The cleanup closure must capture the weak pointer, never the key
		// itself, or the key would stay reachable forever.
		runtime.AddCleanup(key, t.reclaim, wp)
	}
}

// Delete drops the entry for key, if any.
func (t *Table[K, V]) Delete(key *K) {
	t.reclaim(weak.Make(key))
}

// Len reports the number of live entries. Entries of reclaimed records leave
// the count only after the runtime has run their cleanup, so callers probing
// for leaks should poll across garbage collection cycles.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *Table[K, V]) reclaim(wp weak.Pointer[K]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, wp)
}
