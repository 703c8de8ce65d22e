// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"bufio"
	"io"
)

// A Cursor is a forward read position over an input stream. It reads one
// character at a time and supports pushing back the most recently read
// character. A Cursor does not require its input to be seekable.
type Cursor struct {
	r    *bufio.Reader
	off  int // offset of the next unread byte
	last int // size in bytes of last-read input rune, 0 if it cannot be unread

	// Apparent line and column offsets (0-based) of the next unread rune, and
	// of the last-read rune for pushback.
	line, col   int
	pline, pcol int
}

// NewCursor constructs a new Cursor that consumes input from r.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br}
}

// Read consumes and returns the next character of the input. At the end of
// the input, Read returns io.EOF.
func (c *Cursor) Read() (rune, error) {
	ch, nb, err := c.r.ReadRune()
	if err != nil {
		c.last = 0
		return 0, err
	}
	c.last = nb
	c.pline, c.pcol = c.line, c.col
	c.off += nb
	if ch == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col += nb
	}
	return ch, nil
}

// Unread pushes back the character returned by the most recent call to Read,
// so that the next Read returns it again. Only one character can be pushed
// back; calling Unread again before the next Read has no effect.
func (c *Cursor) Unread() {
	if c.last == 0 {
		return
	}
	c.r.UnreadRune()
	c.off -= c.last
	c.line, c.col = c.pline, c.pcol
	c.last = 0
}

// Peek returns the next character of the input without consuming it.
func (c *Cursor) Peek() (rune, error) {
	ch, err := c.Read()
	if err != nil {
		return 0, err
	}
	c.Unread()
	return ch, nil
}

// SkipSpace consumes whitespace until the next non-whitespace character,
// which is left unread. At the end of the input SkipSpace returns io.EOF.
func (c *Cursor) SkipSpace() error {
	for {
		ch, err := c.Read()
		if err != nil {
			return err
		} else if !isSpace(ch) {
			c.Unread()
			return nil
		}
	}
}

// Offset reports the byte offset of the next unread character.
func (c *Cursor) Offset() int { return c.off }

// Location reports the line and column of the next unread character.
func (c *Cursor) Location() LineCol { return LineCol{Line: c.line + 1, Column: c.col} }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
