// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var (
	// ErrIncomplete is reported for an escape sequence cut off by the end of
	// the input.
	ErrIncomplete = errors.New("incomplete escape sequence")

	// ErrInvalid is reported for a malformed escape sequence.
	ErrInvalid = errors.New("invalid escape sequence")
)

// Simple reports the character denoted by the single-character escape
// sequence "\" + ch, and whether ch introduces such a sequence.
// The Unicode escape "\u" is not a simple escape.
func Simple(ch rune) (rune, bool) {
	switch ch {
	case '"', '\\', '/':
		return ch, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// ParseHex decodes the four hexadecimal digits of a Unicode escape.
func ParseHex(data mem.RO) (rune, error) {
	if data.Len() != 4 {
		return 0, ErrIncomplete
	}
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("%w: invalid hex digit %q", ErrInvalid, b)
		}
	}
	return v, nil
}

// IsHighSurrogate reports whether r is the first half of a UTF-16 surrogate
// pair, which must be followed by a low surrogate escape.
func IsHighSurrogate(r rune) bool { return r >= 0xd800 && r < 0xdc00 }

// Combine returns the rune encoded by the surrogate pair hi, lo. If the pair
// is not valid it returns the replacement rune and false.
func Combine(hi, lo rune) (rune, bool) {
	r := utf16.DecodeRune(hi, lo)
	return r, r != utf8.RuneError
}

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Unpaired
// surrogates are replaced by the Unicode replacement rune. An unknown escape
// "\x" is replaced by x, unless strict is true, in which case it is reported
// as ErrInvalid.
func Unquote(src mem.RO, strict bool) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)

		if c, ok := Simple(r); ok {
			putRune(c)
		} else if r == 'u' {
			if src.Len() < 4 {
				return nil, ErrIncomplete
			}
			v, err := ParseHex(src.SliceTo(4))
			if err != nil {
				return nil, err
			}
			src = src.SliceFrom(4)

			// A high surrogate consumes the low half that follows it, if any.
			if IsHighSurrogate(v) && src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if lo, err := ParseHex(src.SliceFrom(2).SliceTo(4)); err == nil {
					if c, ok := Combine(v, lo); ok {
						v = c
						src = src.SliceFrom(6)
					}
				}
			}
			putRune(v) // N.B. unpaired surrogates encode as utf8.RuneError
		} else if strict {
			return nil, fmt.Errorf("%w: %q", ErrInvalid, `\`+string(r))
		} else {
			putRune(r)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}
