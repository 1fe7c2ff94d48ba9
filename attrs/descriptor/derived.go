package descriptor

import (
	"fmt"

	"github.com/on-the-ground/attribut_ive_go/attrs"
)

var _ attrs.FieldDescriptor = (*Derived)(nil)

// Derived is a declared field computed on the fly from the record's other
// raw store entries, the way a once-plain numeric attribute becomes a
// calculation without breaking its readers.
//
// Derived fields are read-only unless an assign hook redistributes the
// written value back onto the underlying entries. Both hooks receive the
// RawRecord capability only, so they cannot re-enter the resolution chain.
type Derived struct {
	name    string
	compute func(rec attrs.RawRecord) (any, error)
	assign  func(rec attrs.RawRecord, value any) error
}

type DerivedOption func(*Derived)

// WithAssign lets writes to the derived field redistribute the value onto
// the record's underlying raw entries.
func WithAssign(assign func(rec attrs.RawRecord, value any) error) DerivedOption {
	return func(d *Derived) { d.assign = assign }
}

func NewDerived(
	name string,
	compute func(rec attrs.RawRecord) (any, error),
	opts ...DerivedOption,
) *Derived {
	d := &Derived{name: name, compute: compute}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Derived) Name() string { return d.name }

func (d *Derived) Read(rec *attrs.Base) (any, error) {
	return d.compute(rec)
}

func (d *Derived) Write(rec *attrs.Base, value any) error {
	if d.assign == nil {
		return fmt.Errorf("%w: %s", attrs.ErrReadOnlyField, d.name)
	}
	return d.assign(rec, value)
}
