// Package witsys derives wire descriptors from WIT type definitions.
//
// System implements codec.TypeSystem over the go.bytecodealliance.org/wit
// object model, so schemas parsed from WIT documents feed the same pipeline
// as Go types:
//
//	analyzer := witsys.NewAnalyzer()
//	desc, err := analyzer.Analyze(someType)
//	if err != nil {
//		return err
//	}
//
// # Mappings
//
//	WIT                      descriptor
//	----------------------   ----------------------------------------
//	bool                     bool
//	u8 u16 u32 u64           u8 u16 u32 u64
//	s8 s16 s32 s64           s8 s16 s32 s64
//	f32 f64                  f32 f64
//	char                     char
//	string                   string
//	list<T>                  list over T
//	record { ... }           tuple over field types, declaration order
//	tuple<...>               tuple over element types
//	type a = b               resolved through to b
//
// Variants, options, results, enums, flags, and resource handles have no
// shape in this format; analyzing them yields an unencodable_type error.
package witsys
