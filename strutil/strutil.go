package strutil

import "strings"

// Whitespace is the default cutset for the trim functions.
const Whitespace = " \r\n\t"

// Trim returns s with leading and trailing whitespace removed.
func Trim(s string) string {
	return strings.Trim(s, Whitespace)
}

// TrimLeft returns s with leading whitespace removed.
func TrimLeft(s string) string {
	return strings.TrimLeft(s, Whitespace)
}

// TrimRight returns s with trailing whitespace removed.
func TrimRight(s string) string {
	return strings.TrimRight(s, Whitespace)
}

// TrimAny returns s with any leading and trailing bytes from cutset removed.
func TrimAny(s, cutset string) string {
	return strings.Trim(s, cutset)
}

// ReplaceAll returns s with every occurrence of find replaced by replacement.
// An empty find leaves s unchanged.
func ReplaceAll(s, find, replacement string) string {
	if find == "" {
		return s
	}
	return strings.ReplaceAll(s, find, replacement)
}

// ReplaceByte returns s with every occurrence of find replaced by replacement.
func ReplaceByte(s string, find, replacement byte) string {
	return strings.ReplaceAll(s, string(find), string(replacement))
}

// Tokenize splits s at every byte contained in delims. Empty tokens are
// dropped when ignoreEmpty is set; a trailing delimiter never produces an
// empty token and empty input produces no tokens.
func Tokenize(s, delims string, ignoreEmpty bool) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delims, s[i]) >= 0 {
			if i > start || !ignoreEmpty {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// hyphen, dash and minus variants folded by NormalizeHyphens
const foldedHyphens = "­‐‑‒–—―−﹣－"

// NormalizeHyphens returns s with the various Unicode hyphens, dashes and
// minuses replaced by plain hyphen-minus. The input is assumed to be UTF-8.
func NormalizeHyphens(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(foldedHyphens, r) {
			return '-'
		}
		return r
	}, s)
}
