package utf

import (
	stderrors "errors"
	"testing"

	"github.com/Scorpio69t/libfilezilla/errors"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{"empty", nil, true},
		{"ascii", []byte("hello"), true},
		{"two byte", []byte("caf\xC3\xA9"), true},
		{"three byte", []byte("\xE2\x82\xAC"), true},
		{"four byte", []byte("\xF0\x9F\x98\x80"), true},
		{"mixed", []byte("a\xC3\xA9\xE2\x82\xAC\xF0\x9F\x98\x80z"), true},
		{"boundary D7FF", []byte("\xED\x9F\xBF"), true},
		{"boundary E000", []byte("\xEE\x80\x80"), true},
		{"boundary 10FFFF", []byte("\xF4\x8F\xBF\xBF"), true},

		{"overlong nul", []byte{0xC0, 0x80}, false},
		{"overlong lead C1", []byte{0xC1, 0xBF}, false},
		{"overlong three byte", []byte{0xE0, 0x80, 0x80}, false},
		{"overlong four byte", []byte{0xF0, 0x80, 0x80, 0x80}, false},
		{"encoded surrogate", []byte{0xED, 0xA0, 0x80}, false},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, false},
		{"lead F5", []byte{0xF5, 0x80, 0x80, 0x80}, false},
		{"lead FF", []byte{0xFF}, false},
		{"bare continuation", []byte{0x80}, false},
		{"continuation after ascii", []byte{0x41, 0x80}, false},
		{"truncated two byte", []byte{0xC3}, false},
		{"truncated three byte", []byte{0xE2, 0x82}, false},
		{"truncated four byte", []byte{0xF0, 0x9F, 0x98}, false},
		{"ascii interrupts sequence", []byte{0xC3, 0x41}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.input); got != tt.want {
				t.Errorf("Valid(% x) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidString(t *testing.T) {
	if !ValidString("hello, é€\U0001F600") {
		t.Error("valid string rejected")
	}
	if ValidString("bad\xC0\x80") {
		t.Error("overlong NUL accepted")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		kind   errors.Kind
		offset int
	}{
		{"overlong nul", []byte{0xC0, 0x80}, errors.KindMalformedLead, 0},
		{"encoded surrogate", []byte{0xED, 0xA0, 0x80}, errors.KindOverlongOrSurrogate, 1},
		{"invalid lead", []byte{0xFF}, errors.KindMalformedLead, 0},
		{"bare continuation", []byte{0x41, 0x42, 0x80}, errors.KindMalformedLead, 2},
		{"broken continuation", []byte{0xE2, 0x82, 0x20}, errors.KindContinuationRange, 2},
		{"overlong E0", []byte{0xE0, 0x9F, 0xBF}, errors.KindOverlongOrSurrogate, 1},
		{"overlong F0", []byte{0xF0, 0x8F, 0x80, 0x80}, errors.KindOverlongOrSurrogate, 1},
		{"above max F4", []byte{0xF4, 0x90, 0x80, 0x80}, errors.KindOverlongOrSurrogate, 1},
		{"truncated", []byte{0xE0, 0xA0}, errors.KindTruncated, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if err == nil {
				t.Fatalf("Validate(% x) = nil, want %s", tt.input, tt.kind)
			}
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error is not *errors.Error: %v", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", e.Kind, tt.kind)
			}
			if e.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", e.Offset, tt.offset)
			}
		})
	}
}

func TestValidateChunk_Resume(t *testing.T) {
	// A four-byte sequence split one byte per call.
	seq := []byte{0xF0, 0x9F, 0x98, 0x80}
	var st ValidState
	for i, b := range seq {
		if !ValidateChunk([]byte{b}, &st) {
			t.Fatalf("byte %d rejected: %v", i, st.Err())
		}
		wantClean := i == len(seq)-1
		if st.Clean() != wantClean {
			t.Fatalf("after byte %d: Clean = %v, want %v", i, st.Clean(), wantClean)
		}
	}
	if err := st.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestValidateChunk_NarrowedRangeSurvivesBoundary(t *testing.T) {
	// The restriction after 0xED must persist when the restricted byte
	// arrives in the next chunk.
	var st ValidState
	if !ValidateChunk([]byte{0xED}, &st) {
		t.Fatalf("lead rejected: %v", st.Err())
	}
	if ValidateChunk([]byte{0xA0}, &st) {
		t.Fatal("surrogate continuation accepted after chunk boundary")
	}
	var e *errors.Error
	if !stderrors.As(st.Err(), &e) {
		t.Fatalf("no structured error: %v", st.Err())
	}
	if e.Kind != errors.KindOverlongOrSurrogate {
		t.Errorf("Kind = %s, want %s", e.Kind, errors.KindOverlongOrSurrogate)
	}
	if e.Offset != 0 {
		t.Errorf("Offset = %d, want 0 (relative to failing chunk)", e.Offset)
	}

	// Same split, but with a byte the narrowed range allows.
	var ok ValidState
	if !ValidateChunk([]byte{0xED}, &ok) || !ValidateChunk([]byte{0x9F, 0xBF}, &ok) {
		t.Fatalf("valid split sequence rejected: %v", ok.Err())
	}
	if !ok.Clean() {
		t.Error("state not clean after complete sequence")
	}
}

func TestValidateChunk_FailedStateStaysFailed(t *testing.T) {
	var st ValidState
	if ValidateChunk([]byte{0xFF}, &st) {
		t.Fatal("invalid lead accepted")
	}
	if ValidateChunk([]byte("hello"), &st) {
		t.Error("failed state accepted more input")
	}
	if st.Finish() == nil {
		t.Error("Finish on failed state returned nil")
	}
}

func TestValidateChunk_TruncationDetectedByFinish(t *testing.T) {
	var st ValidState
	if !ValidateChunk([]byte{0xE0, 0xA0}, &st) {
		t.Fatalf("valid prefix rejected: %v", st.Err())
	}
	if st.Clean() {
		t.Error("mid-sequence state reported clean")
	}
	err := st.Finish()
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindTruncated {
		t.Errorf("Finish = %v, want truncated_sequence", err)
	}
}

// Feeding a valid string split at every position must agree with validating
// it whole.
func TestSplitInvariance(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello"),
		[]byte("caf\xC3\xA9 \xE2\x82\xAC100 \xF0\x9F\x98\x80"),
		[]byte("\xED\x9F\xBF\xEE\x80\x80\xF4\x8F\xBF\xBF"),
		[]byte("\xE0\xA0\x80\xF0\x90\x80\x80"),
	}
	for _, s := range inputs {
		for k := 0; k <= len(s); k++ {
			var st ValidState
			if !ValidateChunk(s[:k], &st) {
				t.Fatalf("split %d of % x: first half rejected: %v", k, s, st.Err())
			}
			if !ValidateChunk(s[k:], &st) {
				t.Fatalf("split %d of % x: second half rejected: %v", k, s, st.Err())
			}
			if err := st.Finish(); err != nil {
				t.Fatalf("split %d of % x: %v", k, s, err)
			}
		}
	}
}

// Invalid input must be rejected at the same byte regardless of splitting.
func TestSplitInvariance_Invalid(t *testing.T) {
	inputs := [][]byte{
		{0x41, 0xED, 0xA0, 0x80},
		{0xC0, 0x80},
		{0x61, 0x62, 0xF4, 0x90, 0x80},
	}
	for _, s := range inputs {
		// Whole-input reference: cumulative offset of the failure.
		var ref ValidState
		ValidateChunk(s, &ref)
		refErr := ref.err
		if refErr == nil {
			t.Fatalf("reference input % x unexpectedly valid", s)
		}

		for k := 0; k <= len(s); k++ {
			var st ValidState
			base := 0
			ok := ValidateChunk(s[:k], &st)
			if ok {
				base = k
				ok = ValidateChunk(s[k:], &st)
			}
			if ok {
				t.Fatalf("split %d of % x: accepted", k, s)
			}
			var e *errors.Error
			stderrors.As(st.Err(), &e)
			if e.Kind != refErr.Kind {
				t.Errorf("split %d of % x: kind %s, want %s", k, s, e.Kind, refErr.Kind)
			}
			if base+e.Offset != refErr.Offset {
				t.Errorf("split %d of % x: cumulative offset %d, want %d",
					k, s, base+e.Offset, refErr.Offset)
			}
		}
	}
}

func BenchmarkValidateChunk_ASCII(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte('a' + i%26)
	}
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		var st ValidState
		ValidateChunk(data, &st)
	}
}

func BenchmarkValidateChunk_Mixed(b *testing.B) {
	var data []byte
	for len(data) < 4096 {
		data = append(data, "a\xC3\xA9\xE2\x82\xAC\xF0\x9F\x98\x80"...)
	}
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		var st ValidState
		ValidateChunk(data, &st)
	}
}
