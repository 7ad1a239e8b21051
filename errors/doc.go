// Package errors provides structured error types for the libfilezilla library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the per-chunk byte offset of
// the offending input, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindMalformedLead).
//		Offset(3).
//		Value(byte(0xFF)).
//		Detail("byte 0xff cannot start a sequence").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedLead(3, 0xFF)
//	err := errors.UnpairedSurrogate(10, 0xDC00)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
