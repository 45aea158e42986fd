package descriptor

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"null", KindNull},
		{"u8", KindU8},
		{"s8", KindS8},
		{"u16", KindU16},
		{"s16", KindS16},
		{"u32", KindU32},
		{"s32", KindS32},
		{"u64", KindU64},
		{"s64", KindS64},
		{"f32", KindF32},
		{"f64", KindF64},
		{"char", KindChar},
		{"string", KindString},
		{"bool", KindBool},
		{"tuple", KindTuple},
		{"list", KindList},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindTagValues(t *testing.T) {
	tests := []struct {
		kind Kind
		want byte
	}{
		{KindNull, 0x00},
		{KindU8, 0x01},
		{KindS8, 0x02},
		{KindU16, 0x03},
		{KindS16, 0x04},
		{KindU32, 0x05},
		{KindS32, 0x06},
		{KindU64, 0x07},
		{KindS64, 0x08},
		{KindF32, 0x09},
		{KindF64, 0x0a},
		{KindChar, 0x0b},
		{KindString, 0x0c},
		{KindBool, 0x0d},
		{KindTuple, 0x0e},
		{KindList, 0x0f},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if byte(tc.kind) != tc.want {
				t.Errorf("tag = 0x%02x, want 0x%02x", byte(tc.kind), tc.want)
			}
		})
	}
}

func TestKindIsScalar(t *testing.T) {
	scalars := []Kind{
		KindNull, KindU8, KindS8, KindU16, KindS16,
		KindU32, KindS32, KindU64, KindS64,
		KindF32, KindF64, KindChar, KindString, KindBool,
	}
	for _, k := range scalars {
		if !k.IsScalar() {
			t.Errorf("%s should be scalar", k)
		}
	}

	nonScalars := []Kind{KindTuple, KindList, Kind(200)}
	for _, k := range nonScalars {
		if k.IsScalar() {
			t.Errorf("%s should not be scalar", k)
		}
	}
}

func TestKindIsValid(t *testing.T) {
	for k := KindNull; k <= KindList; k++ {
		if !k.IsValid() {
			t.Errorf("%s should be valid", k)
		}
	}
	for _, k := range []Kind{Kind(16), Kind(100), Kind(255)} {
		if k.IsValid() {
			t.Errorf("kind %d should not be valid", k)
		}
	}
}
