// Package utf implements the incremental Unicode text-encoding engine.
//
// Three components, independent of each other except for a shared codepoint
// encoder:
//
//	AppendCodepoint   - encode one Unicode scalar value as 1-4 UTF-8 bytes
//	ValidateChunk     - resumable UTF-8 stream validation (RFC 3629)
//	AppendUTF16       - resumable UTF-16 (BE/LE) to UTF-8 conversion
//
// # Streaming
//
// Both the validator and the converter accept input in arbitrary chunks. A
// small state value, whose zero value means "clean, at a sequence boundary",
// is threaded through every call for one logical stream. After the final chunk
// the caller checks the state: a non-clean state means the stream ended in the
// middle of a multi-byte sequence or UTF-16 code unit.
//
//	var st utf.ConvState
//	var out []byte
//	for _, chunk := range chunks {
//	    var ok bool
//	    if out, ok = utf.AppendUTF16LE(out, chunk, &st); !ok {
//	        return st.Err()
//	    }
//	}
//	if err := st.Finish(); err != nil {
//	    return err
//	}
//
// State values carry no identity beyond a single logical stream and must not
// be shared between concurrently processed streams. Concurrent streams with
// separate states and output buffers need no locking.
//
// # Failure reporting
//
// On invalid input the failing call returns false and the state records a
// *errors.Error whose Offset is relative to the start of the chunk passed to
// that call. The stream is abandoned; further calls with the same state keep
// returning false.
//
// # What is rejected
//
// The validator rejects everything RFC 3629 does: bytes that can never start
// a sequence (bare continuations, 0xC0, 0xC1, 0xF5-0xFF), continuation bytes
// outside [0x80, 0xBF], overlong encodings and encoded surrogates (via the
// narrowed first-continuation ranges after 0xE0, 0xED, 0xF0 and 0xF4), and
// codepoints above 0x10FFFF. The converter rejects unpaired UTF-16 surrogates.
// No repair is attempted; recovery policy belongs to the caller.
package utf
