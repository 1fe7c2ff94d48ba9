package attrs

import (
	"errors"
	"sort"

	"github.com/on-the-ground/attribut_ive_go/shared/helper"
)

// Get resolves name through the record's chain:
//
//	declared descriptor → read interceptor → store → lazy binder → missing
//
// A read interceptor, when installed, owns the store tier: it resolves via
// the raw store first and only then runs its custom logic. When it signals
// the missing-attribute condition, resolution falls through to the lazy
// binder before giving up, mirroring how a full interceptor defers to lazy
// population on a genuine miss.
func (b *Base) Get(name string) (any, error) {
	if d, ok := b.schema.descriptors[name]; ok {
		return d.Read(b)
	}

	if b.schema.reader != nil {
		v, err := b.schema.reader.Read(b, name)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrMissingAttribute) {
			return nil, err
		}
	} else if v, ok := b.store.RawGet(name); ok {
		return v, nil
	}

	if b.schema.lazy != nil {
		return b.schema.lazy.Resolve(b, name)
	}

	return nil, MissingAttribute(name)
}

// Set routes a write through the symmetric chain:
//
//	declared descriptor → write interceptor → raw store commit
//
// Once the interceptor's side effect has run, the commit is unconditional;
// there is no partial-write state.
func (b *Base) Set(name string, value any) error {
	if d, ok := b.schema.descriptors[name]; ok {
		return d.Write(b, value)
	}

	if b.schema.writer != nil {
		b.schema.writer.Write(b, name, value)
		return nil
	}

	b.store.RawSet(name, value)
	return nil
}

// Has reports whether name resolves on the record. It is the existence-check
// entry point: the missing-attribute condition is caught and turned into
// false instead of propagating. Note that probing a lazily-bound name
// populates it, exactly like a successful Get would.
func (b *Base) Has(name string) bool {
	_, err := b.Get(name)
	return err == nil
}

// Get resolves name on any record.
func Get(rec Record, name string) (any, error) {
	return rec.Attrs().Get(name)
}

// GetAs resolves name and asserts the result to T.
func GetAs[T any](rec Record, name string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return rec.Attrs().Get(name)
	})
}

// Set writes name on any record.
func Set(rec Record, name string, value any) error {
	return rec.Attrs().Set(name, value)
}

// Has reports whether name resolves on any record.
func Has(rec Record, name string) bool {
	return rec.Attrs().Has(name)
}

// Names enumerates the resolvable names of a record: its declared fields plus
// the currently-populated store entries, sorted and deduplicated. Reserved
// bookkeeping names are included; enumeration surfaces for external
// collaborators filter them with IsReserved.
func Names(rec Record) []string {
	b := rec.Attrs()
	seen := make(map[string]struct{})
	names := make([]string, 0, b.store.Len())
	for _, name := range b.schema.Declared() {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range b.store.Names() {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
