package codec

import (
	"sync/atomic"

	"github.com/shapewire/shapewire"
	"github.com/shapewire/shapewire/errors"
)

// Allocator provides the byte buffers encoded descriptors live in.
type Allocator = shapewire.Allocator

// Buffer holds one encoded descriptor backed by a single allocation.
//
// Release returns the allocation to the allocator; the buffer and any slice
// obtained from Bytes are invalid afterwards. Release is idempotent, so the
// underlying allocation is freed at most once.
type Buffer struct {
	data  []byte
	alloc Allocator
}

// Bytes returns the encoded descriptor. The slice is owned by the buffer
// and is only valid until Release.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the encoded length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Release returns the underlying allocation to the allocator.
func (b *Buffer) Release() {
	if b.data == nil {
		return
	}
	b.alloc.Free(b.data)
	b.data = nil
	b.alloc = nil
}

// HeapAllocator allocates buffers on the Go heap. Free is a no-op; the
// garbage collector reclaims released buffers.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size, nil)
	}
	return make([]byte, size), nil
}

func (HeapAllocator) Free([]byte) {}

// TrackingAllocator wraps another allocator and counts allocations and
// frees. It verifies buffer lifecycles in tests and leak hunts.
type TrackingAllocator struct {
	inner  Allocator
	allocs atomic.Int64
	frees  atomic.Int64
}

// NewTrackingAllocator wraps inner with alloc/free counting.
func NewTrackingAllocator(inner Allocator) *TrackingAllocator {
	return &TrackingAllocator{inner: inner}
}

func (t *TrackingAllocator) Alloc(size int) ([]byte, error) {
	buf, err := t.inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	t.allocs.Add(1)
	return buf, nil
}

func (t *TrackingAllocator) Free(buf []byte) {
	t.frees.Add(1)
	t.inner.Free(buf)
}

// Allocs returns the number of successful allocations.
func (t *TrackingAllocator) Allocs() int64 {
	return t.allocs.Load()
}

// Frees returns the number of frees.
func (t *TrackingAllocator) Frees() int64 {
	return t.frees.Load()
}

// Outstanding returns the number of allocations not yet freed.
func (t *TrackingAllocator) Outstanding() int64 {
	return t.allocs.Load() - t.frees.Load()
}
