// Package strutil provides locale-agnostic string helpers.
//
// Case folding here is deliberately ASCII-only: protocol tokens such as FTP
// commands or HTTP header names compare case-insensitively over A-Z
// regardless of the user's locale, where a locale-aware fold (for example
// Turkish dotted/dotless i) would give wrong answers. For UTF-8 input the
// folding functions operate on individual bytes and leave multi-byte
// sequences untouched.
package strutil
