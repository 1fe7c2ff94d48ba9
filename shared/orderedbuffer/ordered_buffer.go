package orderedbuffer

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
)

var ErrClosedBuffer = errors.New("buffer is closed")

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer keeps at most maxBufLen items sorted by a comparison
// function. Inserting beyond capacity evicts the smallest item into the sink
// channel, and Close flushes whatever remains in order. Concurrent inserters
// are serialized; draining happens through Source.
type OrderedBoundedBuffer[T any] struct {
	mu        sync.Mutex
	data      []T
	maxBufLen int
	compare   CompareFunc[T]

	sink   chan T
	closed atomic.Bool
}

func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T]) *OrderedBoundedBuffer[T] {
	return &OrderedBoundedBuffer[T]{
		data:      make([]T, 0, maxBufLen),
		maxBufLen: maxBufLen,
		compare:   cmp,
		sink:      make(chan T, maxBufLen*2),
	}
}

// Insert places val at its sorted position. It reports false once the buffer
// is closed or ctx is done.
func (b *OrderedBoundedBuffer[T]) Insert(ctx context.Context, val T) bool {
	if b.closed.Load() {
		return false
	}

	b.mu.Lock()
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})
	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val

	var evicted T
	evict := len(b.data) > b.maxBufLen
	if evict {
		evicted = b.data[0]
		b.data = b.data[1:]
	}
	b.mu.Unlock()

	if evict {
		select {
		case <-ctx.Done():
			return false
		case b.sink <- evicted:
		}
	}
	return true
}

// Len reports the number of buffered (not yet evicted or flushed) items.
func (b *OrderedBoundedBuffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Source is the drain side: evicted items during the buffer's lifetime,
// then the ordered remainder after Close.
func (b *OrderedBoundedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes the buffered items into the sink in order and closes it.
// Calling Close more than once is a no-op.
func (b *OrderedBoundedBuffer[T]) Close(ctx context.Context) {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	b.mu.Lock()
	remainder := b.data
	b.data = nil
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, v := range remainder {
			select {
			case <-ctx.Done():
				return
			case b.sink <- v:
			}
		}
		close(b.sink)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
