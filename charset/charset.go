package charset

import (
	"encoding/binary"

	"golang.org/x/text/transform"

	"github.com/Scorpio69t/libfilezilla/errors"
	"github.com/Scorpio69t/libfilezilla/utf"
)

// UTF8Validator is a transform.Transformer that copies its input to the
// output unchanged, stopping with a structured *errors.Error at the first
// byte that is not valid UTF-8. Error offsets are relative to the source
// window of the failing Transform call.
//
// A multi-byte sequence is only consumed once complete, so input truncated
// mid-sequence surfaces as ErrShortSrc until atEOF, then as a
// truncated_sequence error.
var UTF8Validator transform.Transformer = utf8Validator{}

type utf8Validator struct {
	transform.NopResetter
}

func (utf8Validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}

	var st utf.ValidState
	if !utf.ValidateChunk(src[:n], &st) {
		e := st.Err().(*errors.Error)
		// Consume only up to the start of the offending sequence so no
		// partial sequence reaches the output. The error offset still
		// points at the offending byte itself.
		seqStart := e.Offset - st.Pending()
		copy(dst, src[:seqStart])
		return seqStart, seqStart, e
	}

	// Hold back a trailing incomplete sequence so every call starts at a
	// sequence boundary.
	boundary := n - st.Pending()
	copy(dst, src[:boundary])
	if n < len(src) {
		return boundary, boundary, transform.ErrShortDst
	}
	if boundary < n {
		if atEOF {
			return boundary, boundary, errors.Truncated(errors.PhaseValidate)
		}
		return boundary, boundary, transform.ErrShortSrc
	}
	return n, n, nil
}

// UTF16BEDecoder returns a Transformer that converts UTF-16 big-endian bytes
// to UTF-8.
func UTF16BEDecoder() transform.Transformer {
	return utf16Decoder{order: binary.BigEndian}
}

// UTF16LEDecoder returns a Transformer that converts UTF-16 little-endian
// bytes to UTF-8.
func UTF16LEDecoder() transform.Transformer {
	return utf16Decoder{order: binary.LittleEndian}
}

type utf16Decoder struct {
	transform.NopResetter
	order binary.ByteOrder
}

func (d utf16Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rem := len(src) - nSrc
		if rem < 2 {
			if atEOF {
				return nDst, nSrc, errors.Truncated(errors.PhaseConvert)
			}
			return nDst, nSrc, transform.ErrShortSrc
		}

		unit := d.order.Uint16(src[nSrc:])
		var cp uint32
		size := 2
		switch {
		case utf.IsHighSurrogate(unit):
			// The pair is consumed atomically, so the low half is awaited
			// before any output for it is produced.
			if rem < 4 {
				if atEOF {
					return nDst, nSrc, errors.Truncated(errors.PhaseConvert)
				}
				return nDst, nSrc, transform.ErrShortSrc
			}
			low := d.order.Uint16(src[nSrc+2:])
			if !utf.IsLowSurrogate(low) {
				return nDst, nSrc, errors.UnpairedSurrogate(nSrc+2, unit)
			}
			cp = utf.CombineSurrogates(unit, low)
			size = 4
		case utf.IsLowSurrogate(unit):
			return nDst, nSrc, errors.UnpairedSurrogate(nSrc, unit)
		default:
			cp = uint32(unit)
		}

		var buf [4]byte
		w, _ := utf.EncodeCodepoint(buf[:], cp)
		if len(dst)-nDst < w {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], buf[:w])
		nDst += w
		nSrc += size
	}
	return nDst, nSrc, nil
}
