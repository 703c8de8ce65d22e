// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text added for each level of nesting.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f. Each object member and array element is written on its own line,
// indented one level deeper than its container, with commas separating all
// but the last member of each level.
func (f Formatter) Format(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	f.formatValue(bw, v, "")
	return bw.Flush()
}

// formatValue writes a representation of v to w, where indent is the
// indentation of the line on which v begins.
func (f Formatter) formatValue(w *bufio.Writer, v Value, indent string) {
	switch t := v.(type) {
	case Object:
		f.formatObject(w, t, indent)
	case Array:
		f.formatArray(w, t, indent)
	case String, Number, Bool, Null:
		w.WriteString(t.JSON())
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f Formatter) formatObject(w *bufio.Writer, o Object, indent string) {
	if len(o) == 0 {
		w.WriteString("{}")
		return
	}
	w.WriteString("{\n")
	mdent := indent + f.indent()
	for i, m := range o {
		w.WriteString(mdent)
		w.WriteString(String(m.Key).JSON())
		w.WriteString(": ")
		f.formatValue(w, m.Value, mdent)
		f.endLine(w, i, len(o))
	}
	w.WriteString(indent)
	w.WriteByte('}')
}

func (f Formatter) formatArray(w *bufio.Writer, a Array, indent string) {
	if len(a) == 0 {
		w.WriteString("[]")
		return
	}
	w.WriteString("[\n")
	adent := indent + f.indent()
	for i, v := range a {
		w.WriteString(adent)
		f.formatValue(w, v, adent)
		f.endLine(w, i, len(a))
	}
	w.WriteString(indent)
	w.WriteByte(']')
}

// endLine terminates the line for element i of n, with a comma unless it is
// the last.
func (Formatter) endLine(w *bufio.Writer, i, n int) {
	if i < n-1 {
		w.WriteByte(',')
	}
	w.WriteByte('\n')
}
