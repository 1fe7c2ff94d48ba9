// Package descriptor provides shared field descriptors for declared fields.
//
// A descriptor is created once, at type-definition time, and mediates one
// field name across every record of that type. Per-record values live in a
// side-table keyed weakly by record identity, so a descriptor never extends a
// record's lifetime: once a record is unreachable, its side-table entries are
// reclaimed without any explicit action.
package descriptor

import (
	"fmt"

	"github.com/on-the-ground/attribut_ive_go/attrs"
	"github.com/on-the-ground/attribut_ive_go/attrs/internal/weaktable"
)

var _ attrs.FieldDescriptor = (*Validated[int])(nil)

// Validated is a shared descriptor enforcing a validation predicate on every
// write. Reads are referentially transparent and cheap: a side-table lookup,
// falling back to the field's default — never an error, never a side effect
// on any other field.
type Validated[T any] struct {
	name string
	def  T
	pred func(T) error

	values *weaktable.Table[attrs.Base, T]
}

// NewValidated declares a field named name with the given default. pred is
// re-checked on every write; there is no caching of known-good values. A nil
// pred accepts everything.
func NewValidated[T any](name string, def T, pred func(T) error) *Validated[T] {
	return &Validated[T]{
		name:   name,
		def:    def,
		pred:   pred,
		values: weaktable.New[attrs.Base, T](),
	}
}

func (d *Validated[T]) Name() string { return d.name }

// Read looks the record up in the side-table, yielding the default when no
// entry exists.
func (d *Validated[T]) Read(rec *attrs.Base) (any, error) {
	return d.Of(rec), nil
}

// Write validates value and commits it to the record's side-table entry.
// Writes are atomic: a rejected value leaves the existing entry (if any)
// unchanged.
func (d *Validated[T]) Write(rec *attrs.Base, value any) error {
	tv, ok := value.(T)
	if !ok {
		return &attrs.ValidationError{
			Field:  d.name,
			Reason: fmt.Sprintf("expected %T, got %T", d.def, value),
		}
	}
	return d.Assign(rec, tv)
}

// Of is the typed read path.
func (d *Validated[T]) Of(rec attrs.Record) T {
	if v, ok := d.values.Get(rec.Attrs()); ok {
		return v
	}
	return d.def
}

// Assign is the typed write path.
func (d *Validated[T]) Assign(rec attrs.Record, value T) error {
	if d.pred != nil {
		if err := d.pred(value); err != nil {
			return &attrs.ValidationError{Field: d.name, Reason: err.Error()}
		}
	}
	d.values.Set(rec.Attrs(), value)
	return nil
}

// LiveEntries reports the number of records currently holding a side-table
// entry. Entries of reclaimed records disappear after garbage collection, so
// leak probes should poll across GC cycles.
func (d *Validated[T]) LiveEntries() int {
	return d.values.Len()
}
