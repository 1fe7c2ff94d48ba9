package attrs

import (
	"github.com/google/uuid"
)

// RawStore is the raw-access surface of an attribute store: plain lookups and
// mutations with no interception whatsoever.
type RawStore interface {
	RawGet(name string) (any, bool)
	RawSet(name string, value any)
	RawDelete(name string)
	Names() []string
	Len() int
}

// RawRecord is the recursion-safe view of a record handed to interception
// logic: raw store primitives plus stable identity. It deliberately omits the
// intercepted Get/Set entry points, so custom logic cannot loop back into the
// resolution chain it is running under.
type RawRecord interface {
	RawStore
	ID() uuid.UUID
}

// Record is the capability interface a type implements — usually by embedding
// *Base — to opt into the attribute resolution chain.
type Record interface {
	Attrs() *Base
}

// Base carries a record's attribute state: its store, its schema, and a
// stable identity. Identity is the Base pointer itself (descriptors key their
// side-tables on it, weakly) plus a printable UUID for callers that need one.
// Embed *Base, never Base by value: copying would fork the identity.
type Base struct {
	id     uuid.UUID
	schema *Schema
	store  *Store
}

var (
	_ Record    = (*Base)(nil)
	_ RawRecord = (*Base)(nil)
)

// NewBase constructs the attribute state for one record of the given schema.
// Initial field values go through the same Set path as any later write, so
// construction-time validation failures behave identically to explicit ones.
func NewBase(schema *Schema) *Base {
	if schema == nil {
		schema = NewSchema()
	}
	return &Base{
		id:     uuid.New(),
		schema: schema,
		store:  NewStore(),
	}
}

func (b *Base) Attrs() *Base    { return b }
func (b *Base) ID() uuid.UUID   { return b.id }
func (b *Base) Schema() *Schema { return b.schema }

// Raw exposes the record's raw store surface. Interception bookkeeping goes
// through here; ordinary callers should use Get and Set.
func (b *Base) Raw() RawStore { return b }

func (b *Base) RawGet(name string) (any, bool) { return b.store.RawGet(name) }
func (b *Base) RawSet(name string, value any)  { b.store.RawSet(name, value) }
func (b *Base) RawDelete(name string)          { b.store.RawDelete(name) }
func (b *Base) Names() []string                { return b.store.Names() }
func (b *Base) Len() int                       { return b.store.Len() }
