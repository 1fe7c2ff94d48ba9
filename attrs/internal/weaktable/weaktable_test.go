package weaktable_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/attribut_ive_go/attrs/internal/weaktable"
)

type record struct {
	n int
}

func TestTable_SetGetDelete(t *testing.T) {
	table := weaktable.New[record, string]()

	r := &record{n: 1}
	_, ok := table.Get(r)
	assert.False(t, ok)

	table.Set(r, "first")
	v, ok := table.Get(r)
	require.True(t, ok)
	assert.Equal(t, "first", v)

	table.Set(r, "second")
	v, _ = table.Get(r)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, table.Len())

	table.Delete(r)
	_, ok = table.Get(r)
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}

func TestTable_EntriesAreIndependent(t *testing.T) {
	table := weaktable.New[record, int]()

	a := &record{n: 1}
	b := &record{n: 2}

	table.Set(a, 10)
	table.Set(b, 20)

	va, _ := table.Get(a)
	vb, _ := table.Get(b)
	assert.Equal(t, 10, va)
	assert.Equal(t, 20, vb)

	table.Set(a, 11)
	vb, _ = table.Get(b)
	assert.Equal(t, 20, vb)
}

func TestTable_ConcurrentDistinctKeys(t *testing.T) {
	table := weaktable.New[record, int]()

	records := make([]*record, 100)
	for i := range records {
		records[i] = &record{n: i}
	}

	var wg sync.WaitGroup
	wg.Add(len(records))
	for i, r := range records {
		go func(i int, r *record) {
			defer wg.Done()
			table.Set(r, i)
			v, ok := table.Get(r)
			if !ok || v != i {
				t.Errorf("record %d: got %v (ok=%v), want %d", i, v, ok, i)
			}
		}(i, r)
	}
	wg.Wait()

	assert.Equal(t, len(records), table.Len())
}

func TestTable_ReclaimsEntriesAfterCollection(t *testing.T) {
	table := weaktable.New[record, int]()

	// Populate from a scope that retains no strong references afterward.
	func() {
		for i := 0; i < 32; i++ {
			table.Set(&record{n: i}, i)
		}
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return table.Len() == 0
	}, 5*time.Second, 10*time.Millisecond, "side-table entries should be reclaimed once records are unreachable")
}

func TestTable_KeptAliveKeysSurviveCollection(t *testing.T) {
	table := weaktable.New[record, int]()

	kept := &record{n: 42}
	table.Set(kept, 42)

	runtime.GC()
	runtime.GC()

	v, ok := table.Get(kept)
	require.True(t, ok, "a strongly-referenced record must keep its entry")
	assert.Equal(t, 42, v)
}
