package wasmalloc

import (
	"context"
	"math"
	"sync"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/shapewire/shapewire"
	"github.com/shapewire/shapewire/errors"
)

// bufferAlign is the alignment requested from the guest. Encoded
// descriptors are plain bytes.
const bufferAlign = 1

// Memory is the slice of guest linear memory the allocator reads through.
// wazero's api.Memory satisfies it.
type Memory interface {
	// Read returns the byte view at [offset, offset+byteCount). The view
	// aliases linear memory and stays valid until the guest grows it.
	Read(offset, byteCount uint32) ([]byte, bool)
}

type region struct {
	ptr  uint32
	size uint32
}

// GuestAllocator implements shapewire.Allocator on top of a WASM guest's
// exported allocate and free functions, so encoded descriptors land
// directly in guest linear memory.
//
// Alloc calls the guest allocate export and returns the linear-memory view
// for the new region; Free resolves a view back to its guest pointer and
// calls the free export. A single mutex serializes guest calls: wazero
// call stacks are not reentrant.
type GuestAllocator struct {
	mem      Memory
	allocFn  api.Function
	freeFn   api.Function
	ctx      context.Context
	regions  map[*byte]region
	stackBuf []uint64
	mu       sync.Mutex
	simple   bool
}

var _ shapewire.Allocator = (*GuestAllocator)(nil)

// New creates an allocator over a cabi_realloc-style allocate export,
// called as (0, 0, align, size) -> ptr. free takes (ptr, size).
func New(mem Memory, alloc, free api.Function) *GuestAllocator {
	return &GuestAllocator{
		mem:      mem,
		allocFn:  alloc,
		freeFn:   free,
		regions:  make(map[*byte]region),
		stackBuf: make([]uint64, 4),
	}
}

// NewSimple creates an allocator over a plain allocate export, called as
// (size) -> ptr. free takes (ptr, size).
func NewSimple(mem Memory, alloc, free api.Function) *GuestAllocator {
	a := New(mem, alloc, free)
	a.simple = true
	return a
}

// SetContext sets the context passed to guest calls. Without one the
// allocator uses context.Background().
func (a *GuestAllocator) SetContext(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ctx = ctx
}

// Alloc obtains size bytes from the guest and returns the view into its
// linear memory.
func (a *GuestAllocator) Alloc(size int) ([]byte, error) {
	if a.allocFn == nil {
		return nil, errors.New(errors.PhaseAlloc, errors.KindAllocation).
			Detail("no guest allocate function").
			Build()
	}
	if size < 0 || int64(size) > math.MaxUint32 {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size, nil)
	}
	if size == 0 {
		return []byte{}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ptr, err := a.callAlloc(uint32(size))
	if err != nil {
		return nil, errors.AllocationFailed(errors.PhaseAlloc, size, err)
	}
	if ptr == 0 {
		return nil, errors.New(errors.PhaseAlloc, errors.KindAllocation).
			Value(size).
			Detail("guest allocator returned a null pointer").
			Build()
	}

	buf, ok := a.mem.Read(ptr, uint32(size))
	if !ok {
		return nil, errors.New(errors.PhaseAlloc, errors.KindAllocation).
			Value(size).
			Detail("guest pointer %#x is outside linear memory", ptr).
			Build()
	}

	a.regions[&buf[0]] = region{ptr: ptr, size: uint32(size)}
	return buf, nil
}

// Free returns a buffer obtained from Alloc to the guest. Buffers this
// allocator did not hand out are logged and ignored.
func (a *GuestAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	key := &buf[0]
	reg, ok := a.regions[key]
	if !ok {
		Logger().Warn("Free: buffer was not allocated here",
			zap.Int("len", len(buf)))
		return
	}
	delete(a.regions, key)

	if a.freeFn == nil {
		return
	}

	a.stackBuf[0] = uint64(reg.ptr)
	a.stackBuf[1] = uint64(reg.size)
	if err := a.freeFn.CallWithStack(a.callCtx(), a.stackBuf[:2]); err != nil {
		Logger().Warn("Free: guest free failed",
			zap.Uint32("ptr", reg.ptr),
			zap.Uint32("size", reg.size),
			zap.Error(err))
	}
}

// callAlloc invokes the guest allocate export. The caller holds a.mu.
func (a *GuestAllocator) callAlloc(size uint32) (uint32, error) {
	if a.simple {
		a.stackBuf[0] = uint64(size)
		if err := a.allocFn.CallWithStack(a.callCtx(), a.stackBuf[:1]); err != nil {
			return 0, err
		}
		return uint32(a.stackBuf[0]), nil
	}

	a.stackBuf[0] = 0
	a.stackBuf[1] = 0
	a.stackBuf[2] = bufferAlign
	a.stackBuf[3] = uint64(size)
	if err := a.allocFn.CallWithStack(a.callCtx(), a.stackBuf[:4]); err != nil {
		return 0, err
	}
	return uint32(a.stackBuf[0]), nil
}

func (a *GuestAllocator) callCtx() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}
