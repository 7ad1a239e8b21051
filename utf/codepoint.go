package utf

import (
	"github.com/Scorpio69t/libfilezilla/errors"
)

const (
	// MaxCodepoint is the highest valid Unicode codepoint.
	MaxCodepoint = 0x10FFFF

	surrogateMin     = 0xD800
	surrogateMax     = 0xDFFF
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
)

// IsScalarValue reports whether cp is a Unicode scalar value: at most
// MaxCodepoint and not a surrogate.
func IsScalarValue(cp uint32) bool {
	return cp <= MaxCodepoint && (cp < surrogateMin || cp > surrogateMax)
}

// IsHighSurrogate reports whether u is in [0xD800, 0xDBFF].
func IsHighSurrogate(u uint16) bool {
	return u >= surrogateMin && u <= highSurrogateMax
}

// IsLowSurrogate reports whether u is in [0xDC00, 0xDFFF].
func IsLowSurrogate(u uint16) bool {
	return u >= lowSurrogateMin && u <= surrogateMax
}

// CombineSurrogates composes a codepoint from a UTF-16 surrogate pair.
// Both halves must be in their respective ranges.
func CombineSurrogates(high, low uint16) uint32 {
	return (uint32(high)-surrogateMin)<<10 + (uint32(low) - lowSurrogateMin) + 0x10000
}

// appendRune appends the UTF-8 encoding of cp to dst.
// cp must be a valid Unicode scalar value.
func appendRune(dst []byte, cp uint32) []byte {
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp&0x3F))
	case cp < 0x10000:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte((cp>>6)&0x3F),
			0x80|byte(cp&0x3F))
	default:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte((cp>>12)&0x3F),
			0x80|byte((cp>>6)&0x3F),
			0x80|byte(cp&0x3F))
	}
}

// AppendCodepoint appends the canonical 1-4 byte UTF-8 encoding of cp to dst
// and returns the extended slice. If cp is not a Unicode scalar value, dst is
// returned unchanged together with an invalid_codepoint error.
func AppendCodepoint(dst []byte, cp uint32) ([]byte, error) {
	if !IsScalarValue(cp) {
		return dst, errors.InvalidCodepoint(cp)
	}
	return appendRune(dst, cp), nil
}

// EncodeCodepoint writes the UTF-8 encoding of cp into buf, which must be at
// least 4 bytes long, and returns the number of bytes written. If cp is not a
// Unicode scalar value, nothing is written and an invalid_codepoint error is
// returned.
func EncodeCodepoint(buf []byte, cp uint32) (int, error) {
	if !IsScalarValue(cp) {
		return 0, errors.InvalidCodepoint(cp)
	}
	switch {
	case cp < 0x80:
		buf[0] = byte(cp)
		return 1, nil
	case cp < 0x800:
		buf[0] = 0xC0 | byte(cp>>6)
		buf[1] = 0x80 | byte(cp&0x3F)
		return 2, nil
	case cp < 0x10000:
		buf[0] = 0xE0 | byte(cp>>12)
		buf[1] = 0x80 | byte((cp>>6)&0x3F)
		buf[2] = 0x80 | byte(cp&0x3F)
		return 3, nil
	default:
		buf[0] = 0xF0 | byte(cp>>18)
		buf[1] = 0x80 | byte((cp>>12)&0x3F)
		buf[2] = 0x80 | byte((cp>>6)&0x3F)
		buf[3] = 0x80 | byte(cp&0x3F)
		return 4, nil
	}
}
