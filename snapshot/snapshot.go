// Package snapshot is the enumeration surface for external collaborators.
//
// It talks to the core only through Get and the name enumeration, so it
// cannot tell interception-backed fields from ordinary ones. Persistence and
// serialization of the exported map stay the collaborator's responsibility.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/go-viper/mapstructure/v2"

	"github.com/on-the-ground/attribut_ive_go/attrs"
)

// Names lists a record's resolvable names, excluding reserved bookkeeping
// entries.
func Names(rec attrs.Record) []string {
	all := attrs.Names(rec)
	names := all[:0:0]
	for _, name := range all {
		if attrs.IsReserved(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Export resolves every enumerable name through the ordinary read path and
// returns a fresh name-to-value map. Lazily-bound names already populated in
// the store are included; unread ones are not forced.
func Export(rec attrs.Record) (map[string]any, error) {
	out := make(map[string]any)
	for _, name := range Names(rec) {
		v, err := attrs.Get(rec, name)
		if err != nil {
			return nil, fmt.Errorf("export %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// Decode exports the record and decodes it into out, a pointer to a struct.
// Fields map by `attr` tag, falling back to the field name.
func Decode(rec attrs.Record, out any) error {
	m, err := Export(rec)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "attr",
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	return dec.Decode(m)
}

// Fingerprint hashes the record's exported contents for cheap change
// detection. Equal exports hash equal; the hash says nothing about records
// with differing schemas.
func Fingerprint(rec attrs.Record) (uint64, error) {
	m, err := Export(rec)
	if err != nil {
		return 0, err
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0x1f})
		_, _ = h.WriteString(fmt.Sprintf("%v", m[name]))
		_, _ = h.Write([]byte{0x1e})
	}
	return h.Sum64(), nil
}
