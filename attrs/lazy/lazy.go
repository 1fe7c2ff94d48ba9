// Package lazy populates missing attributes on first read.
//
// A Binder is consulted strictly as a fallback, when a name is absent from
// the record's store. It computes a value once, persists it into the store,
// and returns it; every later read of the same name on the same record is a
// plain store lookup. The binder itself is stateless with respect to any
// single record — computed values live in the record's own store, so the
// binder is re-derivable and freely shared across records.
package lazy

import (
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/on-the-ground/attribut_ive_go/attrs"
)

// ComputeFunc produces the value for a missing name. Signalling an unknown
// name with an error wrapping attrs.ErrMissingAttribute makes the binder
// re-raise the uniform missing-attribute condition, so existence checks
// behave the same whether or not lazy binding is installed.
type ComputeFunc func(name string) (any, error)

var _ attrs.LazyBinder = (*Binder)(nil)

// Binder memoizes a ComputeFunc into record stores. Racing first reads of
// the same (record, name) pair are collapsed so the compute function runs
// exactly once per pair.
type Binder struct {
	compute ComputeFunc
	group   singleflight.Group
}

func NewBinder(compute ComputeFunc) *Binder {
	return &Binder{compute: compute}
}

// Resolve computes, persists, and returns the value for name. The store is
// re-checked first: a racing resolver may have populated the name already,
// and the LAZY_MISSING → LAZY_PRESENT transition happens at most once.
func (b *Binder) Resolve(rec attrs.RawRecord, name string) (any, error) {
	if v, ok := rec.RawGet(name); ok {
		return v, nil
	}

	key := rec.ID().String() + "\x1f" + name
	v, err, _ := b.group.Do(key, func() (any, error) {
		if v, ok := rec.RawGet(name); ok {
			return v, nil
		}
		v, err := b.compute(name)
		if err != nil {
			return nil, err
		}
		rec.RawSet(name, v)
		return v, nil
	})
	if err != nil {
		if errors.Is(err, attrs.ErrMissingAttribute) {
			return nil, attrs.MissingAttribute(name)
		}
		return nil, err
	}
	return v, nil
}
