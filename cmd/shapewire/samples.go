package main

import "reflect"

// Sample types for the inspector. Each exercises a different corner of the
// format: the doc example, scalar coverage, nesting, and a composite wide
// enough to chunk under an arity limit.

type pair struct {
	A int32
	B []byte
}

type point struct {
	X int32
	Y int32
}

type header struct {
	Tag    string
	OK     bool
	Length uint16
}

type reading struct {
	Sensor  string
	Celsius float64
	Flags   []bool
}

type scalars struct {
	B   bool
	U8  uint8
	S8  int8
	U16 uint16
	S16 int16
	U32 uint32
	S32 int32
	U64 uint64
	S64 int64
	F32 float32
	F64 float64
	Str string
}

type wide struct {
	A uint8
	B uint16
	C uint32
	D uint64
	E int8
	F int16
	G int32
	H int64
	I bool
}

var samples = map[string]reflect.Type{
	"pair":    reflect.TypeOf(pair{}),
	"point":   reflect.TypeOf(point{}),
	"header":  reflect.TypeOf(header{}),
	"reading": reflect.TypeOf(reading{}),
	"scalars": reflect.TypeOf(scalars{}),
	"wide":    reflect.TypeOf(wide{}),
	"blob":    reflect.TypeOf([]byte(nil)),
	"matrix":  reflect.TypeOf([][]float64(nil)),
	"rows":    reflect.TypeOf([]header(nil)),
}
