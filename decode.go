// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/jdoc/internal/escape"
	"go4.org/mem"
)

// decodeString consumes the body of a string and returns its decoded text.
// Invalid UTF-8 decodes as U+FFFD, or fails if escapes are strict.
// Precondition: the opening quote has been read.
// Postcondition: the closing quote has been read.
func (p *Parser) decodeString() string {
	p.buf = p.buf[:0]
	for {
		switch ch := p.stringChar(); ch {
		case '"':
			return string(p.buf)
		case '\\':
			p.decodeEscape()
		case utf8.RuneError:
			// A one-byte RuneError is an invalid encoding, not an encoded U+FFFD.
			if p.strict && p.c.last == 1 {
				p.c.Unread()
				p.fail(UnexpectedCharacter, nil, "invalid UTF-8 in string")
			}
			p.buf = utf8.AppendRune(p.buf, ch)
		default:
			p.buf = utf8.AppendRune(p.buf, ch)
		}
	}
}

// decodeEscape decodes a single escape sequence into the string buffer.
// Precondition: the backslash has been read.
func (p *Parser) decodeEscape() {
	ch := p.stringChar()
next:
	for {
		if c, ok := escape.Simple(ch); ok {
			p.buf = append(p.buf, byte(c))
			return
		} else if ch != 'u' {
			if p.strict {
				p.fail(InvalidEscape, nil, "unknown escape %q", `\`+string(ch))
			}
			p.buf = utf8.AppendRune(p.buf, ch)
			return
		}

		r := p.decodeHex4()
		for escape.IsHighSurrogate(r) {
			// A high surrogate should be followed by an escaped low surrogate.
			// Anything else leaves the high half unpaired.
			if ch = p.stringChar(); ch != '\\' {
				p.c.Unread()
				break
			}
			if ch = p.stringChar(); ch != 'u' {
				p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
				continue next
			}
			lo := p.decodeHex4()
			if c, ok := escape.Combine(r, lo); ok {
				p.buf = utf8.AppendRune(p.buf, c)
				return
			}
			p.buf = utf8.AppendRune(p.buf, utf8.RuneError)
			r = lo
		}
		p.buf = utf8.AppendRune(p.buf, r) // N.B. unpaired surrogates encode as utf8.RuneError
		return
	}
}

// stringChar returns the next character inside a string literal.
func (p *Parser) stringChar() rune {
	ch, ok := p.more()
	if !ok {
		p.fail(UnterminatedString, nil, "missing closing quote")
	}
	return ch
}

// decodeHex4 consumes the four hexadecimal digits of a Unicode escape.
// Precondition: the "\u" prefix has been read.
func (p *Parser) decodeHex4() rune {
	var hex [4]byte
	for i := range hex {
		ch := p.stringChar()
		if ch >= utf8.RuneSelf {
			p.fail(InvalidEscape, nil, "invalid hex digit %q", ch)
		}
		hex[i] = byte(ch)
	}
	r, err := escape.ParseHex(mem.B(hex[:]))
	if err != nil {
		p.fail(InvalidEscape, err, "%v", err)
	}
	return r
}

// decodeLiteral consumes the rest of word, whose first character has already
// been read.
func (p *Parser) decodeLiteral(word string) {
	for _, want := range word[1:] {
		ch, ok := p.more()
		if !ok {
			p.fail(InvalidLiteral, nil, "incomplete %q", word)
		} else if ch != want {
			p.c.Unread()
			p.fail(InvalidLiteral, nil, "invalid %q, got %q", word, ch)
		}
	}
}

// decodeNumber consumes a number whose first character has already been
// read, and returns its value. The character following the number is left
// unread.
//
// Grammar: "-"? digit+ ("." digit+)?, with no leading zeroes in the integer
// part. Exponents are not supported.
func (p *Parser) decodeNumber(first rune) float64 {
	p.buf = append(p.buf[:0], byte(first))
	ch := first
	if ch == '-' {
		ch = p.digit("-")
	}

	// Integer part.
	next, ok := p.more()
	if ch == '0' {
		if ok && isDigit(next) {
			p.c.Unread()
			p.fail(UnexpectedCharacter, nil, "extra leading zeroes")
		}
	} else {
		for ok && isDigit(next) {
			p.buf = append(p.buf, byte(next))
			next, ok = p.more()
		}
	}

	// Fraction part.
	if ok && next == '.' {
		p.buf = append(p.buf, '.')
		p.digit(".")
		next, ok = p.more()
		for ok && isDigit(next) {
			p.buf = append(p.buf, byte(next))
			next, ok = p.more()
		}
	}
	if ok {
		p.c.Unread()
	}

	v, err := strconv.ParseFloat(string(p.buf), 64)
	if err != nil {
		p.fail(NumberOutOfRange, err, "number %s out of range", p.buf)
	}
	return v
}

// digit consumes a required digit following the prefix of a number, adds it
// to the buffer, and returns it.
func (p *Parser) digit(after string) rune {
	ch, ok := p.more()
	if !ok {
		p.fail(UnexpectedEndOfInput, nil, "expected digit after %q", after)
	} else if !isDigit(ch) {
		p.unexpected(ch, "digit")
	}
	p.buf = append(p.buf, byte(ch))
	return ch
}

func isDigit(ch rune) bool    { return ch >= '0' && ch <= '9' }
func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
