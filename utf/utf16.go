package utf

import (
	"encoding/binary"

	"github.com/Scorpio69t/libfilezilla/errors"
)

// ConvState carries UTF-16 to UTF-8 conversion progress across chunk
// boundaries.
//
// The zero value is the clean state: no partial code unit is pending. While
// mid-stream it can hold a leftover byte from an odd-length chunk, a high
// surrogate awaiting its low half, or both at once when a chunk boundary
// splits the low surrogate of a pair.
//
// A ConvState belongs to exactly one logical stream.
type ConvState struct {
	leftover    byte
	hasLeftover bool
	pendingHigh uint16 // high surrogate awaiting its partner, 0 if none
	err         *errors.Error
}

// Clean reports whether the state holds no pending partial unit and no
// recorded violation. A stream may only end while its state is clean.
func (s *ConvState) Clean() bool {
	return !s.hasLeftover && s.pendingHigh == 0 && s.err == nil
}

// Err returns the violation recorded by a failed conversion call, or nil.
// The error's Offset is relative to the chunk passed to the failing call; for
// a code unit whose bytes straddled the previous chunk it points at the
// first byte of the unit present in the current chunk.
func (s *ConvState) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Finish declares the stream complete. It returns the recorded violation if
// conversion already failed, a truncated_sequence error if a leftover byte or
// an unpaired high surrogate is still pending, and nil otherwise.
func (s *ConvState) Finish() error {
	if s.err != nil {
		return s.err
	}
	if s.hasLeftover || s.pendingHigh != 0 {
		return errors.Truncated(errors.PhaseConvert)
	}
	return nil
}

func (s *ConvState) fail(e *errors.Error) {
	s.err = e
}

// AppendUTF16 converts chunk, the next piece of a UTF-16 byte stream in the
// given byte order, to UTF-8 appended to dst. It resumes from st and returns
// the extended slice plus true, or on invalid input the output so far plus
// false with the violation recorded in st.
//
// An odd trailing byte is retained in st and composed with the first byte of
// the next chunk; a high surrogate at the end of a chunk waits in st for its
// low half.
func AppendUTF16(dst []byte, order binary.ByteOrder, chunk []byte, st *ConvState) ([]byte, bool) {
	if st.err != nil {
		return dst, false
	}
	i := 0
	for {
		var unit uint16
		var off int
		if st.hasLeftover {
			if i >= len(chunk) {
				break
			}
			pair := [2]byte{st.leftover, chunk[i]}
			unit = order.Uint16(pair[:])
			st.hasLeftover = false
			off = i
			i++
		} else {
			if len(chunk)-i < 2 {
				if i < len(chunk) {
					st.leftover = chunk[i]
					st.hasLeftover = true
				}
				break
			}
			unit = order.Uint16(chunk[i : i+2])
			off = i
			i += 2
		}

		if st.pendingHigh != 0 {
			if !IsLowSurrogate(unit) {
				st.fail(errors.UnpairedSurrogate(off, st.pendingHigh))
				return dst, false
			}
			dst = appendRune(dst, CombineSurrogates(st.pendingHigh, unit))
			st.pendingHigh = 0
			continue
		}
		switch {
		case !IsHighSurrogate(unit) && !IsLowSurrogate(unit):
			dst = appendRune(dst, uint32(unit))
		case IsHighSurrogate(unit):
			st.pendingHigh = unit
		default:
			st.fail(errors.UnpairedSurrogate(off, unit))
			return dst, false
		}
	}
	return dst, true
}

// AppendUTF16BE converts a UTF-16 big-endian chunk. See AppendUTF16.
func AppendUTF16BE(dst, chunk []byte, st *ConvState) ([]byte, bool) {
	return AppendUTF16(dst, binary.BigEndian, chunk, st)
}

// AppendUTF16LE converts a UTF-16 little-endian chunk. See AppendUTF16.
func AppendUTF16LE(dst, chunk []byte, st *ConvState) ([]byte, bool) {
	return AppendUTF16(dst, binary.LittleEndian, chunk, st)
}

// UTF16ToUTF8 is the one-shot form of AppendUTF16. It converts b in the given
// byte order and returns the UTF-8 result. An odd-length input or a trailing
// high surrogate yields a truncated_sequence error.
func UTF16ToUTF8(order binary.ByteOrder, b []byte) ([]byte, error) {
	var st ConvState
	out, ok := AppendUTF16(nil, order, b, &st)
	if !ok {
		return nil, st.Err()
	}
	if err := st.Finish(); err != nil {
		return nil, err
	}
	return out, nil
}
