// Package libfilezilla provides string and Unicode text-encoding utilities.
//
// The library centers on an incremental text-encoding engine: encoding Unicode
// scalar values as UTF-8, validating byte streams as well-formed UTF-8, and
// converting UTF-16 byte streams (either endianness) to UTF-8. Validation and
// conversion are resumable: input may be fed in arbitrary chunks and the small
// state value carried between calls keeps multi-byte sequences intact across
// chunk boundaries.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	libfilezilla/        Root package documentation
//	├── utf/             Core codec: codepoint encoder, UTF-8 validator, UTF-16 converter
//	├── charset/         golang.org/x/text transform adapters over the codec
//	├── strutil/         ASCII folding, trimming, tokenizing, integer parsing
//	├── errors/          Structured error types for codec failures
//	└── cmd/fzscan/      CLI for validating and converting files
//
// # Quick Start
//
// Validate a byte stream chunk by chunk:
//
//	var st utf.ValidState
//	for chunk := range chunks {
//	    if !utf.ValidateChunk(chunk, &st) {
//	        return st.Err()
//	    }
//	}
//	if err := st.Finish(); err != nil {
//	    return err // stream ended mid-sequence
//	}
//
// Convert UTF-16LE to UTF-8:
//
//	out, err := utf.UTF16ToUTF8(binary.LittleEndian, data)
//
// Or stream through an io.Reader:
//
//	r := transform.NewReader(file, charset.UTF16LEDecoder())
//
// # Error Handling
//
// Codec failures are reported as structured *errors.Error values carrying the
// processing phase, the violation kind, and the byte offset of the first
// offending byte within the chunk that produced it. See the errors package.
package libfilezilla
