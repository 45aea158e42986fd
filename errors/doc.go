// Package errors provides structured error types for the shapewire library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, host type
// name, descriptor shape, byte offset, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAnalyze, errors.KindUnencodableType).
//		Path("user", "conn").
//		HostType("chan int").
//		Detail("no wire shape for channel types").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unencodable(path, "map[string]int")
//	err := errors.InvalidEncoding(3, "unexpected end of encoding")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
