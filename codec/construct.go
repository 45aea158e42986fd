package codec

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/shapewire/shapewire/codec/internal/arity"
	"github.com/shapewire/shapewire/descriptor"
	"github.com/shapewire/shapewire/errors"
)

// NoLimit marks a TypeConstructor whose composite facility has no arity cap.
const NoLimit = math.MaxInt

// TypeConstructor builds host types from descriptor shapes.
//
// Scalar builds the host type for a childless kind, Container the sequence
// type over an element, and Composite a fixed-arity type over ordered
// components. Limit is the most fields Composite accepts per layer; when a
// tuple is wider, Construct chains layers and Composite receives up to
// Limit fields plus one continuation component in the final slot.
type TypeConstructor interface {
	Scalar(k descriptor.Kind) (reflect.Type, error)
	Container(elem reflect.Type) (reflect.Type, error)
	Composite(components []reflect.Type) (reflect.Type, error)
	Limit() int
}

// Construct rebuilds a host type from a descriptor.
//
// Tuples wider than the constructor's limit become right-leaning chains:
// the trailing fields form the innermost composite and each preceding group
// of Limit fields wraps the chain so far as its final component.
// Flattening the chain left to right restores the original field order.
func Construct(d descriptor.Descriptor, tc TypeConstructor) (reflect.Type, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if tc.Limit() < 1 {
		return nil, errors.InvalidData(errors.PhaseConstruct, nil,
			fmt.Sprintf("arity limit %d is not positive", tc.Limit()))
	}
	return construct(d, tc)
}

func construct(d descriptor.Descriptor, tc TypeConstructor) (reflect.Type, error) {
	switch d.Kind {
	case descriptor.KindList:
		elem, err := construct(*d.Elem, tc)
		if err != nil {
			return nil, err
		}
		return tc.Container(elem)

	case descriptor.KindTuple:
		components := make([]reflect.Type, len(d.Fields))
		for i := range d.Fields {
			c, err := construct(d.Fields[i], tc)
			if err != nil {
				return nil, err
			}
			components[i] = c
		}
		return arity.Nest(components, tc.Limit(), tc.Composite)

	default:
		return tc.Scalar(d.Kind)
	}
}

// ReflectConstructor builds Go types with the reflect package.
//
// Scalars map to their natural Go types, char to rune and null to any.
// Containers become slices and composites become structs with fields named
// F0, F1, ... in component order. The default constructor has no arity cap.
type ReflectConstructor struct {
	limit int
}

// NewReflectConstructor creates a constructor without an arity cap.
func NewReflectConstructor() *ReflectConstructor {
	return &ReflectConstructor{limit: NoLimit}
}

// NewReflectConstructorWithLimit creates a constructor that chains
// composites wider than limit, mirroring hosts whose tuple facility caps
// arity.
func NewReflectConstructorWithLimit(limit int) *ReflectConstructor {
	return &ReflectConstructor{limit: limit}
}

var scalarTypes = map[descriptor.Kind]reflect.Type{
	descriptor.KindNull:   reflect.TypeOf((*any)(nil)).Elem(),
	descriptor.KindU8:     reflect.TypeOf(uint8(0)),
	descriptor.KindS8:     reflect.TypeOf(int8(0)),
	descriptor.KindU16:    reflect.TypeOf(uint16(0)),
	descriptor.KindS16:    reflect.TypeOf(int16(0)),
	descriptor.KindU32:    reflect.TypeOf(uint32(0)),
	descriptor.KindS32:    reflect.TypeOf(int32(0)),
	descriptor.KindU64:    reflect.TypeOf(uint64(0)),
	descriptor.KindS64:    reflect.TypeOf(int64(0)),
	descriptor.KindF32:    reflect.TypeOf(float32(0)),
	descriptor.KindF64:    reflect.TypeOf(float64(0)),
	descriptor.KindChar:   reflect.TypeOf(rune(0)),
	descriptor.KindString: reflect.TypeOf(""),
	descriptor.KindBool:   reflect.TypeOf(false),
}

func (rc *ReflectConstructor) Scalar(k descriptor.Kind) (reflect.Type, error) {
	t, ok := scalarTypes[k]
	if !ok {
		return nil, errors.InvalidData(errors.PhaseConstruct, nil,
			fmt.Sprintf("no Go type for kind %s", k))
	}
	return t, nil
}

func (rc *ReflectConstructor) Container(elem reflect.Type) (reflect.Type, error) {
	return reflect.SliceOf(elem), nil
}

func (rc *ReflectConstructor) Composite(components []reflect.Type) (reflect.Type, error) {
	fields := make([]reflect.StructField, len(components))
	for i, c := range components {
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: c,
		}
	}
	return reflect.StructOf(fields), nil
}

func (rc *ReflectConstructor) Limit() int {
	return rc.limit
}
