package descriptor

// Kind identifies the wire shape of a descriptor node. The numeric value of
// a Kind is the tag byte that encodes it.
type Kind uint8

const (
	KindNull Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindF32
	KindF64
	KindChar
	KindString
	KindBool
	KindTuple
	KindList
)

var kindNames = [...]string{
	KindNull:   "null",
	KindU8:     "u8",
	KindS8:     "s8",
	KindU16:    "u16",
	KindS16:    "s16",
	KindU32:    "u32",
	KindS32:    "s32",
	KindU64:    "u64",
	KindS64:    "s64",
	KindF32:    "f32",
	KindF64:    "f64",
	KindChar:   "char",
	KindString: "string",
	KindBool:   "bool",
	KindTuple:  "tuple",
	KindList:   "list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether k is a childless kind.
func (k Kind) IsScalar() bool {
	return k <= KindBool
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k <= KindList
}
