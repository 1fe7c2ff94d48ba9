package attrs

import "sort"

// FieldDescriptor mediates every read and write of one declared field across
// all records of a type. A descriptor instance is created once, when the type
// is defined, and outlives all of the type's records; it must not assume only
// one record exists. Per-record state belongs in a weak side-table keyed by
// record identity, never in the descriptor by value.
type FieldDescriptor interface {
	// Read never fails: a record with no entry yields the field's default.
	Read(rec *Base) (any, error)
	// Write validates and then commits, atomically: on failure the previous
	// value (or default) is still observable.
	Write(rec *Base, value any) error
}

// LazyBinder is consulted strictly as a fallback, when a name is absent from
// the record's store. It computes a value once, persists it into the store,
// and returns it; later reads are plain store lookups.
type LazyBinder interface {
	Resolve(rec RawRecord, name string) (any, error)
}

// ReadInterceptor is consulted on every read of an undeclared name, found or
// not. Implementations must resolve through the raw store first and only fall
// through to custom logic on a miss — the intercept subpackage enforces this
// two-tier lookup structurally.
type ReadInterceptor interface {
	Read(rec RawRecord, name string) (any, error)
}

// WriteInterceptor runs caller logic for every write of an undeclared name
// and then commits to the store unconditionally, through the raw primitive.
type WriteInterceptor interface {
	Write(rec RawRecord, name string, value any)
}

// Schema is a type-level declaration: which field names are bound to shared
// descriptors, and which interception components apply to the rest. Build one
// Schema per record type, once, and hand it to every NewBase call.
type Schema struct {
	descriptors map[string]FieldDescriptor
	lazy        LazyBinder
	reader      ReadInterceptor
	writer      WriteInterceptor
}

type SchemaOption func(*Schema)

func NewSchema(opts ...SchemaOption) *Schema {
	s := &Schema{descriptors: make(map[string]FieldDescriptor)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithField declares name as a descriptor-mediated field.
func WithField(name string, d FieldDescriptor) SchemaOption {
	return func(s *Schema) { s.descriptors[name] = d }
}

// WithLazyBinder installs a fallback for names missing from the store.
func WithLazyBinder(lb LazyBinder) SchemaOption {
	return func(s *Schema) { s.lazy = lb }
}

// WithReadInterceptor routes every undeclared read through ri.
func WithReadInterceptor(ri ReadInterceptor) SchemaOption {
	return func(s *Schema) { s.reader = ri }
}

// WithWriteInterceptor routes every undeclared write through wi.
func WithWriteInterceptor(wi WriteInterceptor) SchemaOption {
	return func(s *Schema) { s.writer = wi }
}

// DescriptorOf returns the descriptor declared for name, if any.
func (s *Schema) DescriptorOf(name string) (FieldDescriptor, bool) {
	d, ok := s.descriptors[name]
	return d, ok
}

// Declared returns the declared field names in sorted order.
func (s *Schema) Declared() []string {
	names := make([]string, 0, len(s.descriptors))
	for name := range s.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
