package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/attribut_ive_go/attrs"
	"github.com/on-the-ground/attribut_ive_go/attrs/descriptor"
	"github.com/on-the-ground/attribut_ive_go/attrs/intercept"
	"github.com/on-the-ground/attribut_ive_go/attrs/lazy"
	"github.com/on-the-ground/attribut_ive_go/attrs/validate"
	"github.com/on-the-ground/attribut_ive_go/snapshot"
)

func newSchema() *attrs.Schema {
	return attrs.NewSchema(
		attrs.WithField("grade", descriptor.NewValidated("grade", 0, validate.Range(0, 100))),
	)
}

func TestNames_SkipsReservedEntries(t *testing.T) {
	schema := attrs.NewSchema(attrs.WithReadInterceptor(intercept.NewDictBackedReader()))
	r := attrs.NewBase(schema)
	intercept.InstallBacking(r, map[string]any{"foo": 3})
	require.NoError(t, attrs.Set(r, "bar", 1))

	assert.Equal(t, []string{"bar"}, snapshot.Names(r),
		"the backing dictionary is bookkeeping, not data")
}

func TestExport_DeclaredAndPopulated(t *testing.T) {
	r := attrs.NewBase(newSchema())
	require.NoError(t, attrs.Set(r, "grade", 95))
	require.NoError(t, attrs.Set(r, "name", "galileo"))

	m, err := snapshot.Export(r)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"grade": 95, "name": "galileo"}, m)
}

func TestExport_DoesNotForceLazyNames(t *testing.T) {
	calls := 0
	schema := attrs.NewSchema(
		attrs.WithLazyBinder(lazy.NewBinder(func(name string) (any, error) {
			calls++
			return "Value for " + name, nil
		})),
	)
	r := attrs.NewBase(schema)

	m, err := snapshot.Export(r)
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.Equal(t, 0, calls)

	// Once read, the populated name becomes part of the export.
	_, err = attrs.Get(r, "foo")
	require.NoError(t, err)

	m, err = snapshot.Export(r)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo": "Value for foo"}, m)
	assert.Equal(t, 1, calls)
}

func TestDecode_IntoTaggedStruct(t *testing.T) {
	r := attrs.NewBase(newSchema())
	require.NoError(t, attrs.Set(r, "grade", 82))
	require.NoError(t, attrs.Set(r, "name", "kepler"))

	var out struct {
		Grade   int    `attr:"grade"`
		Student string `attr:"name"`
	}
	require.NoError(t, snapshot.Decode(r, &out))
	assert.Equal(t, 82, out.Grade)
	assert.Equal(t, "kepler", out.Student)
}

func TestFingerprint_TracksContent(t *testing.T) {
	r := attrs.NewBase(newSchema())
	require.NoError(t, attrs.Set(r, "grade", 50))

	before, err := snapshot.Fingerprint(r)
	require.NoError(t, err)

	again, err := snapshot.Fingerprint(r)
	require.NoError(t, err)
	assert.Equal(t, before, again, "fingerprint is deterministic")

	require.NoError(t, attrs.Set(r, "grade", 51))
	after, err := snapshot.Fingerprint(r)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}
