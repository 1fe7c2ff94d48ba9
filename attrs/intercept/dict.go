package intercept

import (
	"github.com/on-the-ground/attribut_ive_go/attrs"
)

// BackingField is the reserved store name under which a record's external
// backing dictionary lives. Bookkeeping always reaches it through raw access,
// so reading it — even from inside interception logic — terminates in one
// plain lookup.
const BackingField = attrs.ReservedPrefix + "backing"

// InstallBacking stores dict as the record's backing dictionary. Call it at
// record construction time, before the first intercepted read.
func InstallBacking(rec attrs.Record, dict map[string]any) {
	rec.Attrs().RawSet(BackingField, dict)
}

// NewDictBackedReader returns a Reader that resolves store misses from the
// record's backing dictionary. Names absent from both the store and the
// dictionary yield the uniform missing-attribute condition.
func NewDictBackedReader() *Reader {
	return NewReader(func(rec attrs.RawRecord, name string) (any, error) {
		raw, ok := rec.RawGet(BackingField)
		if !ok {
			return nil, attrs.MissingAttribute(name)
		}
		dict, ok := raw.(map[string]any)
		if !ok {
			return nil, attrs.MissingAttribute(name)
		}
		v, ok := dict[name]
		if !ok {
			return nil, attrs.MissingAttribute(name)
		}
		return v, nil
	})
}
