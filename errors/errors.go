package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAnalyze   Phase = "analyze"   // host type to descriptor
	PhaseValidate  Phase = "validate"  // descriptor well-formedness
	PhaseEncode    Phase = "encode"    // descriptor to bytes
	PhaseDecode    Phase = "decode"    // bytes to descriptor
	PhaseConstruct Phase = "construct" // descriptor to host type
	PhaseAlloc     Phase = "alloc"     // buffer allocation
)

// Kind categorizes the error
type Kind string

const (
	KindUnencodableType Kind = "unencodable_type"
	KindTooManyFields   Kind = "too_many_fields"
	KindInvalidEncoding Kind = "invalid_encoding"
	KindCyclicType      Kind = "cyclic_type"
	KindAllocation      Kind = "allocation"
	KindInvalidData     Kind = "invalid_data"
	KindNilType         Kind = "nil_type"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	HostType string
	Shape    string
	Detail   string
	Path     []string
	Offset   int // byte offset into the encoding; meaningful for decode errors
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Phase == PhaseDecode {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.HostType != "" || e.Shape != "" {
		b.WriteString(": ")
		if e.HostType != "" && e.Shape != "" {
			b.WriteString("host type ")
			b.WriteString(e.HostType)
			b.WriteString(", shape ")
			b.WriteString(e.Shape)
		} else if e.HostType != "" {
			b.WriteString("host type ")
			b.WriteString(e.HostType)
		} else {
			b.WriteString("shape ")
			b.WriteString(e.Shape)
		}
	}

	if e.Detail != "" {
		if e.HostType != "" || e.Shape != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// HostType sets the host type name
func (b *Builder) HostType(t string) *Builder {
	b.err.HostType = t
	return b
}

// Shape sets the descriptor shape
func (b *Builder) Shape(s string) *Builder {
	b.err.Shape = s
	return b
}

// Offset sets the byte offset into the encoding
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unencodable creates an error for a host type with no wire shape
func Unencodable(path []string, hostType string) *Error {
	return &Error{
		Phase:    PhaseAnalyze,
		Kind:     KindUnencodableType,
		Path:     path,
		HostType: hostType,
		Detail:   "type does not map to any wire shape",
	}
}

// TooManyFields creates an error for a composite exceeding the field count limit
func TooManyFields(phase Phase, path []string, hostType string, count, max int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTooManyFields,
		Path:     path,
		HostType: hostType,
		Detail:   fmt.Sprintf("%d fields exceed the limit of %d", count, max),
		Value:    count,
	}
}

// Cyclic creates an error for a self-referential type
func Cyclic(path []string, hostType string) *Error {
	return &Error{
		Phase:    PhaseAnalyze,
		Kind:     KindCyclicType,
		Path:     path,
		HostType: hostType,
		Detail:   "type refers to itself",
	}
}

// InvalidEncoding creates an error for malformed descriptor bytes
func InvalidEncoding(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidEncoding,
		Offset: offset,
		Detail: detail,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Cause:  cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NilType creates an error for a missing input type
func NilType(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilType,
		Detail: "type is nil",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
