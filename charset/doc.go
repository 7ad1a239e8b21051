// Package charset adapts the utf codec to the golang.org/x/text transform
// interface.
//
// The adapters compose with transform.NewReader and transform.NewWriter for
// io plumbing:
//
//	// Fail on the first invalid UTF-8 byte while copying
//	r := transform.NewReader(src, charset.UTF8Validator)
//
//	// Decode a UTF-16LE file to UTF-8 on the fly
//	r := transform.NewReader(file, charset.UTF16LEDecoder())
//
// Transformers here never consume a partial multi-byte sequence or UTF-16
// code unit; incomplete input at the end of the source window is signalled
// with transform.ErrShortSrc, or with a truncated_sequence error once the
// source is exhausted. This keeps every Transform call aligned on a sequence
// boundary and makes the transformers stateless.
package charset
