package codec

import (
	"strconv"
	"sync"

	"github.com/shapewire/shapewire/descriptor"
	"github.com/shapewire/shapewire/errors"
)

// TypeSystem exposes the capabilities the analyzer needs from a host type
// system: recognizing scalars, looking through sequence types, and
// enumerating composite fields.
//
// At most one capability should claim a given type. The analyzer probes
// them in order: LeafKind, then ListElem, then StructFields. A type
// claiming none of them has no wire shape.
type TypeSystem[T comparable] interface {
	// LeafKind reports the scalar kind t maps to, if any.
	LeafKind(t T) (descriptor.Kind, bool)

	// ListElem reports the element type of t, if t is a homogeneous
	// sequence.
	ListElem(t T) (T, bool)

	// StructFields reports the ordered field types of t, if t is a
	// composite.
	StructFields(t T) ([]T, bool)

	// TypeName renders t for diagnostics.
	TypeName(t T) string
}

// Analyzer maps host types to descriptors by probing a TypeSystem.
//
// Analyzer is safe for concurrent use; successful results are cached per
// type.
type Analyzer[T comparable] struct {
	system TypeSystem[T]
	cache  sync.Map // T -> descriptor.Descriptor
}

// NewAnalyzer creates an analyzer over the given type system.
func NewAnalyzer[T comparable](system TypeSystem[T]) *Analyzer[T] {
	return &Analyzer[T]{system: system}
}

// Analyze returns the descriptor for a host type.
//
// Scalars map to their leaf kind, sequences to list descriptors, and
// composites to tuple descriptors over every field in declaration order.
// A type matching no capability yields an unencodable_type error, a
// composite with more than descriptor.MaxTupleFields fields yields
// too_many_fields, and a type reachable from itself yields cyclic_type.
func (a *Analyzer[T]) Analyze(t T) (descriptor.Descriptor, error) {
	var zero T
	if t == zero {
		return descriptor.Descriptor{}, errors.NilType(errors.PhaseAnalyze)
	}

	if cached, ok := a.cache.Load(t); ok {
		return cached.(descriptor.Descriptor), nil
	}

	desc, err := a.analyze(t, nil, nil)
	if err != nil {
		return descriptor.Descriptor{}, err
	}

	a.cache.Store(t, desc)
	return desc, nil
}

// analyze walks one type. active holds the types on the current descent so
// self-referential types are caught instead of recursing forever.
func (a *Analyzer[T]) analyze(t T, path []string, active []T) (descriptor.Descriptor, error) {
	for _, seen := range active {
		if seen == t {
			return descriptor.Descriptor{}, errors.Cyclic(path, a.system.TypeName(t))
		}
	}

	if kind, ok := a.system.LeafKind(t); ok {
		return descriptor.Scalar(kind), nil
	}

	if elem, ok := a.system.ListElem(t); ok {
		inner, err := a.analyze(elem, append(path, "elem"), append(active, t))
		if err != nil {
			return descriptor.Descriptor{}, err
		}
		return descriptor.List(inner), nil
	}

	if fields, ok := a.system.StructFields(t); ok {
		if len(fields) > descriptor.MaxTupleFields {
			return descriptor.Descriptor{}, errors.TooManyFields(
				errors.PhaseAnalyze, path, a.system.TypeName(t),
				len(fields), descriptor.MaxTupleFields)
		}
		descs := make([]descriptor.Descriptor, len(fields))
		active = append(active, t)
		for i, f := range fields {
			d, err := a.analyze(f, append(path, strconv.Itoa(i)), active)
			if err != nil {
				return descriptor.Descriptor{}, err
			}
			descs[i] = d
		}
		return descriptor.Tuple(descs...), nil
	}

	return descriptor.Descriptor{}, errors.Unencodable(path, a.system.TypeName(t))
}
