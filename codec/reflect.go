package codec

import (
	"reflect"

	"github.com/shapewire/shapewire/descriptor"
)

// ReflectSystem adapts Go reflection to the TypeSystem interface.
//
// Scalar mappings follow the fixed-width Go types: bool, uint8..uint64,
// int8..int64, float32/float64, and string. int32 always maps to s32; Go
// erases the rune alias, so reflection never produces char. Platform-sized
// int, uint, and uintptr have no fixed wire width and match no capability,
// as do pointers, maps, arrays, channels, functions, and interfaces.
//
// Slices are the only sequence shape. Structs are the only composite shape;
// every field participates in declaration order, exported or not, including
// embedded fields.
type ReflectSystem struct{}

// NewReflectSystem creates a type system over Go reflection.
func NewReflectSystem() ReflectSystem {
	return ReflectSystem{}
}

var scalarKinds = map[reflect.Kind]descriptor.Kind{
	reflect.Bool:    descriptor.KindBool,
	reflect.Uint8:   descriptor.KindU8,
	reflect.Int8:    descriptor.KindS8,
	reflect.Uint16:  descriptor.KindU16,
	reflect.Int16:   descriptor.KindS16,
	reflect.Uint32:  descriptor.KindU32,
	reflect.Int32:   descriptor.KindS32,
	reflect.Uint64:  descriptor.KindU64,
	reflect.Int64:   descriptor.KindS64,
	reflect.Float32: descriptor.KindF32,
	reflect.Float64: descriptor.KindF64,
	reflect.String:  descriptor.KindString,
}

func (ReflectSystem) LeafKind(t reflect.Type) (descriptor.Kind, bool) {
	k, ok := scalarKinds[t.Kind()]
	return k, ok
}

func (ReflectSystem) ListElem(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Slice {
		return t.Elem(), true
	}
	return nil, false
}

func (ReflectSystem) StructFields(t reflect.Type) ([]reflect.Type, bool) {
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	fields := make([]reflect.Type, t.NumField())
	for i := range fields {
		fields[i] = t.Field(i).Type
	}
	return fields, true
}

func (ReflectSystem) TypeName(t reflect.Type) string {
	return t.String()
}

// NewReflectAnalyzer creates an analyzer over Go types.
func NewReflectAnalyzer() *Analyzer[reflect.Type] {
	return NewAnalyzer[reflect.Type](NewReflectSystem())
}
