package strutil

import "testing"

func TestToIntegral_Unsigned(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
		ok   bool
	}{
		{"0", 0, true},
		{"65535", 65535, true},
		{"+21", 21, true},
		{"65536", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"+", 0, false},
		{"12a", 0, false},
		{" 12", 0, false},
	}
	for _, tt := range tests {
		got, ok := ToIntegral[uint16](tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ToIntegral[uint16](%q) = (%d, %v), want (%d, %v)",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToIntegral_Signed(t *testing.T) {
	tests := []struct {
		in   string
		want int8
		ok   bool
	}{
		{"0", 0, true},
		{"127", 127, true},
		{"-128", -128, true},
		{"128", 0, false},
		{"-129", 0, false},
		{"--1", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := ToIntegral[int8](tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ToIntegral[int8](%q) = (%d, %v), want (%d, %v)",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToIntegral_64BitBounds(t *testing.T) {
	if v, ok := ToIntegral[uint64]("18446744073709551615"); !ok || v != 1<<64-1 {
		t.Errorf("max uint64: (%d, %v)", v, ok)
	}
	if _, ok := ToIntegral[uint64]("18446744073709551616"); ok {
		t.Error("uint64 overflow accepted")
	}
	if v, ok := ToIntegral[int64]("9223372036854775807"); !ok || v != 1<<63-1 {
		t.Errorf("max int64: (%d, %v)", v, ok)
	}
	if v, ok := ToIntegral[int64]("-9223372036854775808"); !ok || v != -1<<63 {
		t.Errorf("min int64: (%d, %v)", v, ok)
	}
	if _, ok := ToIntegral[int64]("9223372036854775808"); ok {
		t.Error("int64 overflow accepted")
	}
	if _, ok := ToIntegral[int64]("-9223372036854775809"); ok {
		t.Error("int64 underflow accepted")
	}
}

func TestToIntegral_Port(t *testing.T) {
	// typical use: parsing a port number from user input
	port, ok := ToIntegral[uint16]("8021")
	if !ok || port != 8021 {
		t.Errorf("port parse: (%d, %v)", port, ok)
	}
}
