package codec

import (
	"fmt"

	"github.com/shapewire/shapewire/descriptor"
	"github.com/shapewire/shapewire/errors"
)

// Decoder deserializes descriptors from their wire encoding.
//
// Decoder is stateless and safe for concurrent use.
type Decoder struct{}

// NewDecoder creates a decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads exactly one descriptor from the front of data and reports
// how many bytes it consumed. Bytes past the descriptor are ignored, so
// descriptors can be embedded in larger messages and read in sequence.
func (d *Decoder) Decode(data []byte) (descriptor.Descriptor, int, error) {
	cur := cursor{data: data}
	desc, err := readNode(&cur, 0)
	if err != nil {
		return descriptor.Descriptor{}, 0, err
	}
	return desc, cur.off, nil
}

// cursor tracks a monotonically advancing read position.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) readByte() (byte, error) {
	if c.off >= len(c.data) {
		return 0, errors.InvalidEncoding(c.off, "unexpected end of encoding")
	}
	b := c.data[c.off]
	c.off++
	return b, nil
}

func readNode(c *cursor, depth int) (descriptor.Descriptor, error) {
	if depth > descriptor.MaxNestingDepth {
		return descriptor.Descriptor{}, errors.InvalidEncoding(c.off,
			fmt.Sprintf("nesting depth exceeds %d", descriptor.MaxNestingDepth))
	}

	tagOff := c.off
	tag, err := c.readByte()
	if err != nil {
		return descriptor.Descriptor{}, err
	}

	kind := descriptor.Kind(tag)
	if !kind.IsValid() {
		return descriptor.Descriptor{}, errors.InvalidEncoding(tagOff,
			fmt.Sprintf("unknown tag 0x%02x", tag))
	}

	switch kind {
	case descriptor.KindList:
		elem, err := readNode(c, depth+1)
		if err != nil {
			return descriptor.Descriptor{}, err
		}
		return descriptor.List(elem), nil

	case descriptor.KindTuple:
		count, err := c.readByte()
		if err != nil {
			return descriptor.Descriptor{}, err
		}
		fields := make([]descriptor.Descriptor, int(count))
		for i := range fields {
			fields[i], err = readNode(c, depth+1)
			if err != nil {
				return descriptor.Descriptor{}, err
			}
		}
		return descriptor.Tuple(fields...), nil

	default:
		return descriptor.Scalar(kind), nil
	}
}
