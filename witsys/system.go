package witsys

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/shapewire/shapewire/codec"
	"github.com/shapewire/shapewire/descriptor"
)

// System adapts WIT type definitions to the codec.TypeSystem interface.
//
// Scalar mappings follow the WIT primitives one to one: bool, u8..u64,
// s8..s64, f32/f64, char, and string. list<T> is the sequence shape.
// Records and tuples are the composite shapes, field types in declaration
// order. Alias type definitions resolve to their target before any
// capability is probed.
//
// Variants, options, results, enums, flags, and resource handles carry
// payload or identity the wire format cannot express; they match no
// capability.
type System struct{}

// NewSystem creates a type system over WIT types.
func NewSystem() System {
	return System{}
}

func (System) LeafKind(t wit.Type) (descriptor.Kind, bool) {
	switch resolve(t).(type) {
	case wit.Bool:
		return descriptor.KindBool, true
	case wit.U8:
		return descriptor.KindU8, true
	case wit.S8:
		return descriptor.KindS8, true
	case wit.U16:
		return descriptor.KindU16, true
	case wit.S16:
		return descriptor.KindS16, true
	case wit.U32:
		return descriptor.KindU32, true
	case wit.S32:
		return descriptor.KindS32, true
	case wit.U64:
		return descriptor.KindU64, true
	case wit.S64:
		return descriptor.KindS64, true
	case wit.F32:
		return descriptor.KindF32, true
	case wit.F64:
		return descriptor.KindF64, true
	case wit.Char:
		return descriptor.KindChar, true
	case wit.String:
		return descriptor.KindString, true
	}
	return 0, false
}

func (System) ListElem(t wit.Type) (wit.Type, bool) {
	td, ok := resolve(t).(*wit.TypeDef)
	if !ok {
		return nil, false
	}
	if l, ok := td.Kind.(*wit.List); ok {
		return l.Type, true
	}
	return nil, false
}

func (System) StructFields(t wit.Type) ([]wit.Type, bool) {
	td, ok := resolve(t).(*wit.TypeDef)
	if !ok {
		return nil, false
	}
	switch kind := td.Kind.(type) {
	case *wit.Record:
		fields := make([]wit.Type, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = f.Type
		}
		return fields, true
	case *wit.Tuple:
		return kind.Types, true
	}
	return nil, false
}

func (System) TypeName(t wit.Type) string {
	return typeName(t)
}

// NewAnalyzer creates an analyzer over WIT types.
func NewAnalyzer() *codec.Analyzer[wit.Type] {
	return codec.NewAnalyzer[wit.Type](NewSystem())
}

// resolve follows alias type definitions to the type they name. A TypeDef
// whose Kind is a structural definition (list, record, tuple, ...) is
// returned as is. Chains are bounded by descriptor.MaxNestingDepth; a
// definition past the bound stays unresolved and matches no capability.
func resolve(t wit.Type) wit.Type {
	for range descriptor.MaxNestingDepth {
		td, ok := t.(*wit.TypeDef)
		if !ok {
			return t
		}
		switch kind := td.Kind.(type) {
		case *wit.List, *wit.Record, *wit.Tuple, *wit.Enum, *wit.Flags,
			*wit.Option, *wit.Result, *wit.Variant, *wit.Own, *wit.Borrow:
			return t
		case wit.Type:
			t = kind
		default:
			return t
		}
	}
	return t
}

func typeName(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return kindName(v.Kind)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func kindName(k wit.TypeDefKind) string {
	switch kind := k.(type) {
	case *wit.List:
		return "list<" + typeName(kind.Type) + ">"
	case *wit.Record:
		return "record"
	case *wit.Tuple:
		parts := make([]string, len(kind.Types))
		for i, t := range kind.Types {
			parts[i] = typeName(t)
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	case *wit.Enum:
		return "enum"
	case *wit.Flags:
		return "flags"
	case *wit.Option:
		return "option<" + typeName(kind.Type) + ">"
	case *wit.Result:
		return "result"
	case *wit.Variant:
		return "variant"
	case *wit.Own:
		return "own"
	case *wit.Borrow:
		return "borrow"
	case wit.Type:
		return typeName(kind)
	default:
		return fmt.Sprintf("%T", k)
	}
}
