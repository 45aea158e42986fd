// Package wasmalloc allocates descriptor buffers inside WASM guest memory.
//
// GuestAllocator implements shapewire.Allocator over a wazero-instantiated
// guest: Alloc calls the guest's allocate export and returns the view into
// linear memory, Free resolves the view back to its guest pointer and calls
// the free export. Wiring it into a codec.Encoder makes every encoded
// descriptor land directly in the guest heap:
//
//	alloc := wasmalloc.New(mod.Memory(),
//		mod.ExportedFunction("cabi_realloc"),
//		mod.ExportedFunction("free"))
//	alloc.SetContext(ctx)
//
//	buf, err := codec.NewEncoder(alloc).Encode(desc)
//	if err != nil {
//		return err
//	}
//	defer buf.Release()
//
// # Guest ABI
//
// New expects a cabi_realloc-style allocate export, invoked as
// (0, 0, align, size) -> ptr. NewSimple expects a plain (size) -> ptr
// export. Both forms pair with a free export taking (ptr, size).
//
// # Ownership
//
// Buffers alias guest linear memory. They stay valid until Free, or until
// the guest grows its memory, whichever comes first. Failed guest frees are
// logged at Warn through the package logger and otherwise ignored; the
// guest owns its own heap consistency.
package wasmalloc
