package codec

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shapewire/shapewire/descriptor"
	swerrors "github.com/shapewire/shapewire/errors"
)

func TestConstruct_Scalars(t *testing.T) {
	tests := []struct {
		kind descriptor.Kind
		want reflect.Type
	}{
		{descriptor.KindNull, reflect.TypeOf((*any)(nil)).Elem()},
		{descriptor.KindU8, reflect.TypeOf(uint8(0))},
		{descriptor.KindS8, reflect.TypeOf(int8(0))},
		{descriptor.KindU16, reflect.TypeOf(uint16(0))},
		{descriptor.KindS16, reflect.TypeOf(int16(0))},
		{descriptor.KindU32, reflect.TypeOf(uint32(0))},
		{descriptor.KindS32, reflect.TypeOf(int32(0))},
		{descriptor.KindU64, reflect.TypeOf(uint64(0))},
		{descriptor.KindS64, reflect.TypeOf(int64(0))},
		{descriptor.KindF32, reflect.TypeOf(float32(0))},
		{descriptor.KindF64, reflect.TypeOf(float64(0))},
		{descriptor.KindChar, reflect.TypeOf(rune(0))},
		{descriptor.KindString, reflect.TypeOf("")},
		{descriptor.KindBool, reflect.TypeOf(false)},
	}

	tc := NewReflectConstructor()
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := Construct(descriptor.Scalar(tt.kind), tc)
			if err != nil {
				t.Fatalf("Construct() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Construct() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstruct_Lists(t *testing.T) {
	tc := NewReflectConstructor()

	got, err := Construct(descriptor.List(descriptor.U8()), tc)
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}
	if got != reflect.TypeOf([]uint8(nil)) {
		t.Errorf("Construct(list<u8>) = %v, want []uint8", got)
	}

	got, err = Construct(descriptor.List(descriptor.List(descriptor.Null())), tc)
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}
	if got != reflect.TypeOf([][]any(nil)) {
		t.Errorf("Construct(list<list<null>>) = %v, want [][]any", got)
	}
}

func TestConstruct_Tuple(t *testing.T) {
	desc := descriptor.Tuple(descriptor.S32(), descriptor.List(descriptor.U8()))

	got, err := Construct(desc, NewReflectConstructor())
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}

	if got.Kind() != reflect.Struct || got.NumField() != 2 {
		t.Fatalf("Construct() = %v, want struct with 2 fields", got)
	}
	if got.Field(0).Name != "F0" || got.Field(0).Type != reflect.TypeOf(int32(0)) {
		t.Errorf("field 0 = %v %v, want F0 int32", got.Field(0).Name, got.Field(0).Type)
	}
	if got.Field(1).Name != "F1" || got.Field(1).Type != reflect.TypeOf([]byte(nil)) {
		t.Errorf("field 1 = %v %v, want F1 []uint8", got.Field(1).Name, got.Field(1).Type)
	}
}

func TestConstruct_EmptyTuple(t *testing.T) {
	got, err := Construct(descriptor.Tuple(), NewReflectConstructor())
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}
	if got.Kind() != reflect.Struct || got.NumField() != 0 {
		t.Errorf("Construct(tuple<>) = %v, want empty struct", got)
	}
}

// Reconstructing a descriptor and analyzing the result must yield the same
// descriptor when the constructor has no arity cap.
func TestConstruct_ReanalyzeFlat(t *testing.T) {
	tests := []descriptor.Descriptor{
		descriptor.U16(),
		descriptor.List(descriptor.Bool()),
		descriptor.Tuple(descriptor.S32(), descriptor.List(descriptor.U8())),
		descriptor.Tuple(
			descriptor.String(),
			descriptor.Tuple(descriptor.F64(), descriptor.F64()),
			descriptor.List(descriptor.Tuple(descriptor.U64())),
		),
	}

	analyzer := NewReflectAnalyzer()
	for _, desc := range tests {
		t.Run(desc.String(), func(t *testing.T) {
			typ, err := Construct(desc, NewReflectConstructor())
			if err != nil {
				t.Fatalf("Construct() error = %v", err)
			}
			back, err := analyzer.Analyze(typ)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if !back.Equal(desc) {
				t.Errorf("reanalyzed = %s, want %s", back, desc)
			}
		})
	}
}

// chunkKinds paints wide tuples with a detectable kind sequence. The Go
// types are pairwise distinct so flattenChain can verify ordering.
var chunkKinds = []struct {
	kind descriptor.Kind
	typ  reflect.Type
}{
	{descriptor.KindU8, reflect.TypeOf(uint8(0))},
	{descriptor.KindS16, reflect.TypeOf(int16(0))},
	{descriptor.KindU32, reflect.TypeOf(uint32(0))},
	{descriptor.KindS64, reflect.TypeOf(int64(0))},
	{descriptor.KindF32, reflect.TypeOf(float32(0))},
	{descriptor.KindString, reflect.TypeOf("")},
	{descriptor.KindBool, reflect.TypeOf(false)},
}

// flattenChain rebuilds the logical field order of a chained composite. The
// callers only use scalar fields, so a struct-typed final component is
// always a continuation layer.
func flattenChain(typ reflect.Type) []reflect.Type {
	var flat []reflect.Type
	for {
		n := typ.NumField()
		if n == 0 {
			return flat
		}
		for i := 0; i < n-1; i++ {
			flat = append(flat, typ.Field(i).Type)
		}
		last := typ.Field(n - 1).Type
		if last.Kind() == reflect.Struct {
			typ = last
			continue
		}
		return append(flat, last)
	}
}

func TestConstruct_ChunkedTuples(t *testing.T) {
	const limit = 7
	tc := NewReflectConstructorWithLimit(limit)

	for n := 1; n <= 3*limit+2; n++ {
		fields := make([]descriptor.Descriptor, n)
		want := make([]reflect.Type, n)
		for i := range fields {
			pick := chunkKinds[i%len(chunkKinds)]
			fields[i] = descriptor.Scalar(pick.kind)
			want[i] = pick.typ
		}

		typ, err := Construct(descriptor.Tuple(fields...), tc)
		if err != nil {
			t.Fatalf("Construct(%d fields) error = %v", n, err)
		}

		if n <= limit {
			if typ.NumField() != n {
				t.Errorf("%d fields: NumField() = %d, want flat %d", n, typ.NumField(), n)
			}
		} else if typ.NumField() != limit+1 {
			t.Errorf("%d fields: NumField() = %d, want %d fields plus continuation",
				n, typ.NumField(), limit)
		}

		flat := flattenChain(typ)
		if len(flat) != n {
			t.Fatalf("%d fields: flattened to %d components", n, len(flat))
		}
		for i := range want {
			if flat[i] != want[i] {
				t.Errorf("%d fields: component %d = %v, want %v", n, i, flat[i], want[i])
			}
		}
	}
}

func TestConstruct_ChunkBoundaries(t *testing.T) {
	const limit = 7
	tc := NewReflectConstructorWithLimit(limit)

	// Nine fields split as seven plus a two-field continuation.
	fields := make([]descriptor.Descriptor, 9)
	for i := range fields {
		fields[i] = descriptor.U8()
	}

	typ, err := Construct(descriptor.Tuple(fields...), tc)
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}

	if typ.NumField() != 8 {
		t.Fatalf("outer NumField() = %d, want 8", typ.NumField())
	}
	inner := typ.Field(7).Type
	if inner.Kind() != reflect.Struct || inner.NumField() != 2 {
		t.Fatalf("continuation = %v, want struct with 2 fields", inner)
	}

	// Exactly limit fields stay flat.
	typ, err = Construct(descriptor.Tuple(fields[:limit]...), tc)
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}
	if typ.NumField() != limit {
		t.Errorf("NumField() = %d, want %d", typ.NumField(), limit)
	}
}

func TestConstruct_LimitOne(t *testing.T) {
	tc := NewReflectConstructorWithLimit(1)

	desc := descriptor.Tuple(descriptor.U8(), descriptor.S16(), descriptor.Bool())
	typ, err := Construct(desc, tc)
	if err != nil {
		t.Fatalf("Construct() error = %v", err)
	}

	flat := flattenChain(typ)
	want := []reflect.Type{
		reflect.TypeOf(uint8(0)), reflect.TypeOf(int16(0)), reflect.TypeOf(false),
	}
	if len(flat) != len(want) {
		t.Fatalf("flattened to %d components, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("component %d = %v, want %v", i, flat[i], want[i])
		}
	}
}

func TestConstruct_MalformedDescriptor(t *testing.T) {
	_, err := Construct(descriptor.Descriptor{Kind: descriptor.KindList}, NewReflectConstructor())
	target := &swerrors.Error{Phase: swerrors.PhaseValidate, Kind: swerrors.KindInvalidData}
	if !errors.Is(err, target) {
		t.Errorf("Construct() error = %v, want invalid_data", err)
	}
}

// zeroLimitConstructor reports a nonsensical arity cap.
type zeroLimitConstructor struct{ *ReflectConstructor }

func (zeroLimitConstructor) Limit() int { return 0 }

func TestConstruct_InvalidLimit(t *testing.T) {
	tc := zeroLimitConstructor{NewReflectConstructor()}
	_, err := Construct(descriptor.Tuple(descriptor.U8()), tc)
	target := &swerrors.Error{Phase: swerrors.PhaseConstruct, Kind: swerrors.KindInvalidData}
	if !errors.Is(err, target) {
		t.Errorf("Construct() error = %v, want invalid_data", err)
	}
}

// noCharConstructor fails on char to exercise error propagation.
type noCharConstructor struct{ *ReflectConstructor }

func (c noCharConstructor) Scalar(k descriptor.Kind) (reflect.Type, error) {
	if k == descriptor.KindChar {
		return nil, swerrors.InvalidData(swerrors.PhaseConstruct, nil, "host has no char type")
	}
	return c.ReflectConstructor.Scalar(k)
}

func TestConstruct_ConstructorError(t *testing.T) {
	tc := noCharConstructor{NewReflectConstructor()}

	desc := descriptor.Tuple(descriptor.U8(), descriptor.List(descriptor.Char()))
	_, err := Construct(desc, tc)
	target := &swerrors.Error{Phase: swerrors.PhaseConstruct, Kind: swerrors.KindInvalidData}
	if !errors.Is(err, target) {
		t.Errorf("Construct() error = %v, want the constructor's error", err)
	}
}
