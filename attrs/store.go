package attrs

import (
	"sort"
	"strings"
	"sync"
)

// ReservedPrefix marks bookkeeping names that interception components store
// on a record's behalf. Reserved names are ordinary store entries, but
// enumeration surfaces built for external collaborators should skip them.
const ReservedPrefix = "__"

// IsReserved reports whether name is a private bookkeeping name.
func IsReserved(name string) bool {
	return strings.HasPrefix(name, ReservedPrefix)
}

// Store is a record's own attribute state: a mapping from field name to
// type-erased value. A store belongs to exactly one record and is never
// shared; it is mutated only by the record itself or by a component acting
// on the record's behalf.
//
// Individual lookups and mutations are serialized, so lazy population may
// race plain reads of other names. Read-modify-write of the same name from
// multiple goroutines is not atomic and remains unsupported.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// RawGet reads a value without any interception.
func (s *Store) RawGet(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// RawSet writes a value without any interception.
func (s *Store) RawSet(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// RawDelete removes a value without any interception.
func (s *Store) RawDelete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
}

// Names returns the currently-populated names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of populated names.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
