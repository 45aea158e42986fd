// Package shapewire provides shape analysis and a compact self-describing
// wire format for structured data types.
//
// The library turns host types into small descriptor trees, serializes those
// trees into single-allocation byte buffers, and reconstructs equivalent
// host types on the receiving side. It is the type-negotiation half of a
// cross-runtime data channel: peers exchange descriptors up front so both
// sides agree on the shape of the values that follow.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	shapewire/           Root package with the core Allocator interface
//	├── descriptor/      Descriptor tree, wire kinds, and sizing
//	├── codec/           Type analysis, encoding, decoding, reconstruction
//	├── witsys/          WIT type system adapter for the analyzer
//	├── wasmalloc/       Allocator backed by a WASM guest's exported heap
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Analyze a Go type and encode its shape:
//
//	type Pair struct {
//	    A int32
//	    B []byte
//	}
//
//	analyzer := codec.NewReflectAnalyzer()
//	desc, err := analyzer.Analyze(reflect.TypeOf(Pair{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	buf, err := codec.NewEncoder(codec.HeapAllocator{}).Encode(desc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Release()
//
//	fmt.Printf("% x\n", buf.Bytes()) // 0e 02 06 0f 01
//
// Decode the shape and rebuild a Go type on the other side:
//
//	desc, n, err := codec.NewDecoder().Decode(buf.Bytes())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	typ, err := codec.Construct(desc, codec.NewReflectConstructor())
//
// # Wire Format
//
// Descriptors serialize to a preorder walk of the tree, one tag byte per
// node:
//
//   - Scalars: a single tag byte (null, u8..s64, f32, f64, char, string, bool)
//   - list: the list tag followed by the element descriptor
//   - tuple: the tuple tag, a one-byte field count, then each field descriptor
//
// The encoding carries no length prefix or framing; decoding consumes
// exactly one descriptor and reports how many bytes it used, so descriptors
// can be embedded in larger messages.
//
// # Thread Safety
//
// Analyzer, Encoder, and Decoder are safe for concurrent use. Buffer is NOT
// thread-safe: it is owned by a single goroutine between Encode and Release.
//
// # Memory Model
//
// Every successful encode performs exactly one allocation through the
// configured Allocator, and releasing the returned buffer performs exactly
// one Free of that same buffer. Allocators that place buffers inside a WASM
// guest's linear memory (see wasmalloc) rely on this pairing to avoid
// leaking guest heap.
package shapewire
