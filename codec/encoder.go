package codec

import (
	"github.com/shapewire/shapewire/descriptor"
	"github.com/shapewire/shapewire/errors"
)

// Encoder serializes descriptors into allocator-backed buffers.
//
// Encoder is safe for concurrent use.
type Encoder struct {
	alloc Allocator
}

// NewEncoder creates an encoder that obtains output buffers from alloc.
func NewEncoder(alloc Allocator) *Encoder {
	return &Encoder{alloc: alloc}
}

// Encode serializes d in preorder: one tag byte per node, with a count byte
// after each tuple tag.
//
// Exactly one buffer is obtained from the allocator per call, sized by
// d.EncodedSize. The caller owns the returned buffer and releases it
// exactly once.
func (e *Encoder) Encode(d descriptor.Descriptor) (*Buffer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	size := d.EncodedSize()
	buf, err := e.alloc.Alloc(size)
	if err != nil {
		return nil, errors.AllocationFailed(errors.PhaseEncode, size, err)
	}
	if len(buf) < size {
		e.alloc.Free(buf)
		return nil, errors.New(errors.PhaseEncode, errors.KindAllocation).
			Detail("allocator returned %d bytes, need %d", len(buf), size).
			Build()
	}
	buf = buf[:size]

	writeNode(d, buf, 0)

	return &Buffer{data: buf, alloc: e.alloc}, nil
}

// writeNode fills buf from off with the encoding of d and returns the
// offset past it. Validate has already run, so d is well-formed and buf is
// exactly large enough.
func writeNode(d descriptor.Descriptor, buf []byte, off int) int {
	buf[off] = byte(d.Kind)
	off++
	switch d.Kind {
	case descriptor.KindList:
		off = writeNode(*d.Elem, buf, off)
	case descriptor.KindTuple:
		buf[off] = byte(len(d.Fields))
		off++
		for i := range d.Fields {
			off = writeNode(d.Fields[i], buf, off)
		}
	}
	return off
}
