// Package codec analyzes host types into descriptors, serializes
// descriptors to bytes, and rebuilds host types from decoded descriptors.
//
// # Pipeline Overview
//
// The package covers both directions of a shape exchange:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Host Type → [Analyzer] → Descriptor → [Encoder] → Buffer    │
//	│ Bytes → [Decoder] → Descriptor → [Construct] → Host Type    │
//	└──────────────────────────────────────────────────────────────┘
//
// # Analysis Rules
//
// The Analyzer probes a TypeSystem's capabilities in a fixed order:
//
//	Rule  Capability      Result
//	───────────────────────────────────────────────
//	1     LeafKind        scalar descriptor
//	2     ListElem        list over analyzed element
//	3     StructFields    tuple over analyzed fields
//	4     none            unencodable_type error
//
// ReflectSystem implements the capabilities for Go types; witsys does the
// same for WIT types. Any type system can participate by implementing the
// three probes.
//
// # Key Types
//
//	Analyzer[T]          - Maps host types to descriptors
//	TypeSystem[T]        - Capability interface the analyzer probes
//	Encoder              - Writes descriptors into allocator-backed buffers
//	Decoder              - Reads one descriptor from a byte prefix
//	TypeConstructor      - Builds host types from shapes
//	Buffer / Allocator   - Single-allocation output lifecycle
//
// # Encoding Flow
//
//  1. Analyzer.Analyze(hostType) → Descriptor
//  2. Encoder.Encode(desc) → *Buffer (one Alloc, exact size)
//  3. transmit Buffer.Bytes(), then Buffer.Release() (one Free)
//
// # Decoding Flow
//
//  1. Decoder.Decode(data) → Descriptor, bytes consumed
//  2. Construct(desc, constructor) → host type
//
// Decode consumes exactly one descriptor and ignores trailing bytes, so
// shapes can ride in front of payloads.
//
// # Arity Chaining
//
// Hosts whose composite facility caps arity (7 for classic fixed-arity
// tuple libraries) reconstruct wide tuples as right-leaning chains: the
// trailing fields form the innermost composite and each full group of
// Limit fields wraps the chain so far in its final slot. Flattening the
// chain restores the original field order. Constructors without a cap
// report NoLimit and build flat composites.
//
// # Allocation
//
// Encode performs exactly one Alloc per call, sized by EncodedSize, and
// Buffer.Release performs exactly one Free. HeapAllocator backs buffers
// with the Go heap; wasmalloc places them in a WASM guest's linear memory;
// TrackingAllocator wraps either to count the pairing in tests.
//
// # Thread Safety
//
// Analyzer, Encoder, Decoder, and the provided constructors are safe for
// concurrent use. Buffer is owned by one goroutine between Encode and
// Release.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[analyze] unencodable_type at 1.elem: host type map[string]int - type does not map to any wire shape
//	[decode] invalid_encoding at offset 3: unknown tag 0x2a
package codec
