// Package attrs provides a generic attribute access layer for record-like types.
//
// Attribut-ive Go lets many unrelated record types share field validation and
// lazy-computation logic without duplicating it per field or per type — and
// without leaking memory when that logic lives outside the records it serves.
//
// # What is a record?
//
// A record is any value that owns an attribute store: a private mapping from
// field name to type-erased value. Types opt in by embedding *attrs.Base,
// which carries the store, a stable identity, and a pointer to the type's
// Schema.
//
// # How is an attribute resolved?
//
// Every read runs an explicit, priority-ordered chain that short-circuits on
// the first answer:
//
//	declared descriptor → read interceptor → attribute store → lazy binder → missing
//
// Writes run the symmetric chain:
//
//	declared descriptor → write interceptor → raw store commit
//
// Declared fields are mediated by shared descriptors (see the descriptor
// subpackage) holding per-record state in weak side-tables. Undeclared names
// can be lazily computed once and memoized into the store (lazy subpackage),
// or routed through full read/write interception (intercept subpackage).
//
// # Recursion safety
//
// Interception logic never receives the intercepted entry points. Hooks are
// handed the RawRecord capability — raw store primitives plus identity — so
// the interface contract, not caller discipline, keeps an interceptor from
// invoking itself.
//
// # Errors
//
// Two conditions are observable by callers: validation failures
// (ValidationError) and the uniform missing-attribute condition
// (ErrMissingAttribute). Both are synchronous and immediate; a failed write
// leaves record state untouched.
package attrs
