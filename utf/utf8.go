package utf

import (
	"github.com/Scorpio69t/libfilezilla/errors"
)

// ValidState carries UTF-8 validation progress across chunk boundaries.
//
// The zero value is the clean state: validation is at a sequence boundary.
// While mid-sequence the state holds the number of continuation bytes still
// expected and the permitted range for the very next byte; the range is
// narrower than [0x80, 0xBF] immediately after the lead bytes 0xE0, 0xED,
// 0xF0 and 0xF4, and that narrowing must survive a chunk boundary.
//
// A ValidState belongs to exactly one logical stream.
type ValidState struct {
	need   int  // continuation bytes still expected
	seen   int  // bytes of the current sequence already consumed
	lo, hi byte // permitted range for the next byte, when need > 0
	err    *errors.Error
}

// Clean reports whether the state is at a sequence boundary with no recorded
// violation. A stream may only end while its state is clean.
func (s *ValidState) Clean() bool {
	return s.need == 0 && s.err == nil
}

// Err returns the violation recorded by a failed ValidateChunk call, or nil.
// The error's Offset is relative to the chunk passed to the failing call.
func (s *ValidState) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Pending returns how many bytes of an unfinished multi-byte sequence have
// been consumed so far. Zero at a sequence boundary.
func (s *ValidState) Pending() int {
	return s.seen
}

// Finish declares the stream complete. It returns the recorded violation if
// validation already failed, a truncated_sequence error if the stream ended
// mid-sequence, and nil otherwise.
func (s *ValidState) Finish() error {
	if s.err != nil {
		return s.err
	}
	if s.need > 0 {
		return errors.Truncated(errors.PhaseValidate)
	}
	return nil
}

func (s *ValidState) start(need int, lo, hi byte) {
	s.need = need
	s.seen = 1
	s.lo, s.hi = lo, hi
}

func (s *ValidState) fail(e *errors.Error) bool {
	s.err = e
	return false
}

// ValidateChunk validates chunk as the next piece of a UTF-8 stream, resuming
// from st. It returns true if the stream is valid so far; the stream may still
// end mid-sequence, which only st.Finish or st.Clean can tell apart.
//
// On the first violation it returns false and st records the error with the
// offset of the offending byte relative to chunk. Once failed, the stream is
// abandoned and further calls return false.
func ValidateChunk(chunk []byte, st *ValidState) bool {
	if st.err != nil {
		return false
	}
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		if st.need > 0 {
			if c < st.lo || c > st.hi {
				if c < 0x80 || c > 0xBF {
					return st.fail(errors.ContinuationOutOfRange(i, c))
				}
				// In continuation range, but outside the narrowed window
				// imposed by the lead byte.
				return st.fail(errors.OverlongOrSurrogate(i, c))
			}
			st.need--
			st.seen++
			st.lo, st.hi = 0x80, 0xBF
			if st.need == 0 {
				st.seen = 0
			}
			continue
		}
		switch {
		case c < 0x80:
			// ASCII
		case c < 0xC2:
			// Bare continuation byte, or the always-overlong leads 0xC0/0xC1.
			return st.fail(errors.MalformedLead(i, c))
		case c < 0xE0:
			st.start(1, 0x80, 0xBF)
		case c == 0xE0:
			st.start(2, 0xA0, 0xBF) // excludes overlong 3-byte forms
		case c == 0xED:
			st.start(2, 0x80, 0x9F) // excludes encoded surrogates D800-DFFF
		case c < 0xF0:
			st.start(2, 0x80, 0xBF)
		case c == 0xF0:
			st.start(3, 0x90, 0xBF) // excludes overlong 4-byte forms
		case c < 0xF4:
			st.start(3, 0x80, 0xBF)
		case c == 0xF4:
			st.start(3, 0x80, 0x8F) // caps codepoints at 0x10FFFF
		default:
			return st.fail(errors.MalformedLead(i, c))
		}
	}
	return true
}

// Valid reports whether b is entirely valid UTF-8. A trailing incomplete
// sequence counts as invalid.
func Valid(b []byte) bool {
	var st ValidState
	return ValidateChunk(b, &st) && st.need == 0
}

// ValidString is like Valid but for a string.
func ValidString(s string) bool {
	return Valid([]byte(s))
}

// Validate is the one-shot form of ValidateChunk. It returns nil if b is
// entirely valid UTF-8, the recorded violation otherwise. A trailing
// incomplete sequence yields a truncated_sequence error.
func Validate(b []byte) error {
	var st ValidState
	if !ValidateChunk(b, &st) {
		return st.Err()
	}
	return st.Finish()
}
