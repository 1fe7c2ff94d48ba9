// Package intercept routes every attribute access through caller logic.
//
// A Reader handles all reads of undeclared names, found or not; a Writer
// handles all writes. Both hand their hooks the attrs.RawRecord capability —
// raw store primitives plus identity — never the intercepted entry points.
// That two-tier split (raw access primitive vs. intercepted access) is what
// keeps a hook that touches its own bookkeeping fields from recursing back
// into the interception it is running under.
package intercept

import (
	"github.com/on-the-ground/attribut_ive_go/attrs"
)

// ReadHook resolves a name the raw store could not. Returning an error that
// wraps attrs.ErrMissingAttribute signals the uniform missing-attribute
// condition.
type ReadHook func(rec attrs.RawRecord, name string) (any, error)

// WriteHook observes a write before it is committed.
type WriteHook func(rec attrs.RawRecord, name string, value any)

var _ attrs.ReadInterceptor = (*Reader)(nil)

// Reader is a full read interceptor. Every read first resolves through the
// record's raw store — bypassing interception entirely — and only on a miss
// falls through to the hook. The store-first tier lives here, in the
// component, not as a convention left to hook authors.
type Reader struct {
	hook ReadHook
}

func NewReader(hook ReadHook) *Reader {
	return &Reader{hook: hook}
}

func (r *Reader) Read(rec attrs.RawRecord, name string) (any, error) {
	if v, ok := rec.RawGet(name); ok {
		return v, nil
	}
	if r.hook == nil {
		return nil, attrs.MissingAttribute(name)
	}
	return r.hook(rec, name)
}

var _ attrs.WriteInterceptor = (*Writer)(nil)

// Writer is a full write interceptor: the hook's side effect runs first, then
// the value is committed through the raw store primitive, unconditionally.
// There is no partial-write state and no way for the hook to veto the commit.
type Writer struct {
	hook WriteHook
}

func NewWriter(hook WriteHook) *Writer {
	return &Writer{hook: hook}
}

func (w *Writer) Write(rec attrs.RawRecord, name string, value any) {
	if w.hook != nil {
		w.hook(rec, name, value)
	}
	rec.RawSet(name, value)
}
