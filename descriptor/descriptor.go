package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shapewire/shapewire/errors"
)

// MaxTupleFields is the largest field count a tuple descriptor can carry.
// The wire format stores the count in a single byte.
const MaxTupleFields = 255

// MaxNestingDepth bounds descriptor tree depth during validation and
// decoding. It protects against stack exhaustion on adversarial input.
const MaxNestingDepth = 4096

// Descriptor describes the shape of a value as a tree of kinds.
//
// Scalar kinds have no children. KindList carries the element shape in Elem.
// KindTuple carries the field shapes, in order, in Fields. The zero value is
// the null descriptor.
type Descriptor struct {
	Elem   *Descriptor
	Fields []Descriptor
	Kind   Kind
}

// Scalar returns a descriptor for a childless kind.
func Scalar(k Kind) Descriptor {
	return Descriptor{Kind: k}
}

// List returns a descriptor for a homogeneous sequence of elem.
func List(elem Descriptor) Descriptor {
	return Descriptor{Kind: KindList, Elem: &elem}
}

// Tuple returns a descriptor for an ordered, fixed set of fields.
func Tuple(fields ...Descriptor) Descriptor {
	return Descriptor{Kind: KindTuple, Fields: fields}
}

// Shorthand constructors for the scalar kinds.

func Null() Descriptor   { return Scalar(KindNull) }
func U8() Descriptor     { return Scalar(KindU8) }
func S8() Descriptor     { return Scalar(KindS8) }
func U16() Descriptor    { return Scalar(KindU16) }
func S16() Descriptor    { return Scalar(KindS16) }
func U32() Descriptor    { return Scalar(KindU32) }
func S32() Descriptor    { return Scalar(KindS32) }
func U64() Descriptor    { return Scalar(KindU64) }
func S64() Descriptor    { return Scalar(KindS64) }
func F32() Descriptor    { return Scalar(KindF32) }
func F64() Descriptor    { return Scalar(KindF64) }
func Char() Descriptor   { return Scalar(KindChar) }
func String() Descriptor { return Scalar(KindString) }
func Bool() Descriptor   { return Scalar(KindBool) }

// EncodedSize returns the exact number of bytes the wire encoding of d
// occupies: one tag byte per node plus one count byte per tuple. d must be
// well-formed (see Validate).
func (d Descriptor) EncodedSize() int {
	switch d.Kind {
	case KindList:
		return 1 + d.Elem.EncodedSize()
	case KindTuple:
		n := 2
		for i := range d.Fields {
			n += d.Fields[i].EncodedSize()
		}
		return n
	default:
		return 1
	}
}

// Equal reports whether d and other describe the same shape.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case KindList:
		if d.Elem == nil || other.Elem == nil {
			return d.Elem == other.Elem
		}
		return d.Elem.Equal(*other.Elem)
	case KindTuple:
		if len(d.Fields) != len(other.Fields) {
			return false
		}
		for i := range d.Fields {
			if !d.Fields[i].Equal(other.Fields[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the shape in WIT-like notation, e.g. "tuple<s32, list<u8>>".
func (d Descriptor) String() string {
	switch d.Kind {
	case KindList:
		if d.Elem == nil {
			return "list<?>"
		}
		return "list<" + d.Elem.String() + ">"
	case KindTuple:
		var b strings.Builder
		b.WriteString("tuple<")
		for i := range d.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.Fields[i].String())
		}
		b.WriteByte('>')
		return b.String()
	default:
		return d.Kind.String()
	}
}

// Validate checks that d is well-formed: every kind is known, list
// descriptors carry an element, tuple field counts fit in the one-byte wire
// count, and nesting stays within MaxNestingDepth.
func (d Descriptor) Validate() error {
	return d.validate(nil, 0)
}

func (d Descriptor) validate(path []string, depth int) error {
	if depth > MaxNestingDepth {
		return errors.InvalidData(errors.PhaseValidate, path,
			fmt.Sprintf("nesting depth exceeds %d", MaxNestingDepth))
	}
	if !d.Kind.IsValid() {
		return errors.InvalidData(errors.PhaseValidate, path,
			fmt.Sprintf("unknown kind %d", d.Kind))
	}
	switch d.Kind {
	case KindList:
		if d.Elem == nil {
			return errors.InvalidData(errors.PhaseValidate, path,
				"list descriptor has no element")
		}
		return d.Elem.validate(append(path, "elem"), depth+1)
	case KindTuple:
		if len(d.Fields) > MaxTupleFields {
			return errors.TooManyFields(errors.PhaseValidate, path,
				"", len(d.Fields), MaxTupleFields)
		}
		for i := range d.Fields {
			if err := d.Fields[i].validate(append(path, strconv.Itoa(i)), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
