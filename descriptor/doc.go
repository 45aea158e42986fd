// Package descriptor defines the type descriptor tree and its wire kinds.
//
// A Descriptor is a small immutable tree describing the shape of a value:
// scalar leaves, homogeneous lists, and fixed-arity tuples. Descriptors are
// produced by codec.Analyzer, serialized by codec.Encoder, and rebuilt into
// host types by codec.Construct.
//
// # Wire Tags
//
// Each Kind doubles as its one-byte wire tag:
//
//	Kind      Tag     Kind      Tag
//	─────────────────────────────────
//	null      0x00    f32       0x09
//	u8        0x01    f64       0x0a
//	s8        0x02    char      0x0b
//	u16       0x03    string    0x0c
//	s16       0x04    bool      0x0d
//	u32       0x05    tuple     0x0e
//	s32       0x06    list      0x0f
//	u64       0x07
//	s64       0x08
//
// A scalar encodes as its tag alone. A list encodes as its tag followed by
// the element's encoding. A tuple encodes as its tag, a one-byte field
// count, then each field's encoding in order.
//
// # Sizing
//
//	Shape                      EncodedSize
//	───────────────────────────────────────
//	scalar                     1
//	list<T>                    1 + size(T)
//	tuple<T0, ..., Tn-1>       2 + sum(size(Ti))
//
// EncodedSize is exact, which lets the encoder allocate its output buffer
// once and fill it without growing.
package descriptor
