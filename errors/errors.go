package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // codepoint to UTF-8
	PhaseValidate Phase = "validate" // UTF-8 stream validation
	PhaseConvert  Phase = "convert"  // UTF-16 to UTF-8 conversion
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidCodepoint    Kind = "invalid_codepoint"
	KindMalformedLead       Kind = "malformed_lead_byte"
	KindOverlongOrSurrogate Kind = "overlong_or_surrogate_encoding"
	KindContinuationRange   Kind = "continuation_out_of_range"
	KindUnpairedSurrogate   Kind = "unpaired_surrogate"
	KindTruncated           Kind = "truncated_sequence"
	KindInvalidInput        Kind = "invalid_input"
)

// Error is the structured error type used throughout the library.
//
// Offset, where non-negative, is the position of the first offending byte
// relative to the start of the chunk processed by the call that detected the
// violation. Callers feeding a stream in pieces add their own running total to
// obtain a stream-cumulative position.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Offset int // -1 when the error is not tied to an input position
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
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
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the per-chunk byte offset
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

// InvalidCodepoint creates an error for a value that is not a Unicode scalar
// value: a surrogate, or a value above 0x10FFFF.
func InvalidCodepoint(cp uint32) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidCodepoint,
		Offset: -1,
		Detail: fmt.Sprintf("%#x is not a Unicode scalar value", cp),
		Value:  cp,
	}
}

// MalformedLead creates an error for a byte that can never start a UTF-8
// sequence: a bare continuation byte, or one of 0xC0, 0xC1, 0xF5-0xFF.
func MalformedLead(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindMalformedLead,
		Offset: offset,
		Detail: fmt.Sprintf("byte %#02x cannot start a sequence", b),
		Value:  b,
	}
}

// OverlongOrSurrogate creates an error for a first continuation byte outside
// the narrowed range imposed by its lead byte.
func OverlongOrSurrogate(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindOverlongOrSurrogate,
		Offset: offset,
		Detail: fmt.Sprintf("continuation byte %#02x encodes an overlong sequence or a surrogate", b),
		Value:  b,
	}
}

// ContinuationOutOfRange creates an error for a continuation byte outside
// [0x80, 0xBF].
func ContinuationOutOfRange(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindContinuationRange,
		Offset: offset,
		Detail: fmt.Sprintf("byte %#02x is not a continuation byte", b),
		Value:  b,
	}
}

// UnpairedSurrogate creates an error for a UTF-16 surrogate half with no
// matching partner.
func UnpairedSurrogate(offset int, unit uint16) *Error {
	return &Error{
		Phase:  PhaseConvert,
		Kind:   KindUnpairedSurrogate,
		Offset: offset,
		Detail: fmt.Sprintf("surrogate %#04x has no matching partner", unit),
		Value:  unit,
	}
}

// Truncated creates an error for a stream that was declared complete while a
// multi-byte sequence or code unit was still pending.
func Truncated(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: -1,
		Detail: "input ended in the middle of a sequence",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
