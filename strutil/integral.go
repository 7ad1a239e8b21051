package strutil

import "math"

// Integer constrains the target types of ToIntegral.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ToIntegral parses s as a decimal integer of type T with overflow checking.
// An optional leading '+' or '-' is accepted; '-' only for signed types.
// It returns the zero value and false for empty, malformed or out-of-range
// input.
func ToIntegral[T Integer](s string) (T, bool) {
	var zero T
	signed := zero-1 < 0

	i := 0
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			if !signed {
				return zero, false
			}
			negative = true
		}
		i++
	}
	if i == len(s) {
		return zero, false
	}

	var u uint64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return zero, false
		}
		d := uint64(c - '0')
		if u > (math.MaxUint64-d)/10 {
			return zero, false
		}
		u = u*10 + d
	}

	if negative {
		if u > 1<<63 {
			return zero, false
		}
		iv := -int64(u)
		v := T(iv)
		if int64(v) != iv {
			return zero, false
		}
		return v, true
	}
	v := T(u)
	if uint64(v) != u || (signed && v < 0) {
		return zero, false
	}
	return v, true
}
