package strutil

import "strings"

// ToLowerASCII maps A-Z to a-z and leaves every other byte unchanged.
func ToLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ToUpperASCII maps a-z to A-Z and leaves every other byte unchanged.
func ToUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// LowerASCII returns s with all ASCII uppercase letters lowercased.
// Bytes outside A-Z, including those of multi-byte UTF-8 sequences, are
// copied verbatim.
func LowerASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(ToLowerASCII(s[i]))
	}
	return b.String()
}

// UpperASCII returns s with all ASCII lowercase letters uppercased.
func UpperASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(ToUpperASCII(s[i]))
	}
	return b.String()
}

// IsASCII reports whether s contains only bytes in the 7-bit ASCII range.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// EqualFoldASCII reports whether a and b are equal under ASCII case folding.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if ToLowerASCII(a[i]) != ToLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

// LessFoldASCII reports whether a sorts before b under ASCII case folding.
// Suitable as an ordering for case-insensitive keys, e.g. HTTP headers.
func LessFoldASCII(a, b string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := ToLowerASCII(a[i]), ToLowerASCII(b[i])
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}

// HasPrefixFold reports whether s starts with prefix under ASCII case folding.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && EqualFoldASCII(s[:len(prefix)], prefix)
}

// HasSuffixFold reports whether s ends with suffix under ASCII case folding.
func HasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && EqualFoldASCII(s[len(s)-len(suffix):], suffix)
}
