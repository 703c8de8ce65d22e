// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jdoc/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		strict bool
		fail   error
	}{
		{``, ``, false, nil},
		{`ok go`, "ok go", false, nil},
		{`abc\ndef`, "abc\ndef", false, nil},
		{`\b\f\n\r\t`, "\b\f\n\r\t", false, nil},
		{`\"\\\/`, `"\/`, false, nil},
		{`a \u0026 b`, "a & b", false, nil},
		{`\u00e9t\u00C9`, "\u00e9t\u00c9", false, nil},
		{`\ud83d\ude00!`, "\U0001F600!", false, nil},
		{`\ud83d x`, "\ufffd x", false, nil}, // unpaired high surrogate
		{`\ude00`, "\ufffd", false, nil},     // unpaired low surrogate
		{`\q\x`, "qx", false, nil},           // unknown escapes pass through
		{`\q`, "", true, escape.ErrInvalid},  // unless strict
		{`\u`, ``, false, escape.ErrIncomplete},
		{`\u00`, ``, false, escape.ErrIncomplete},
		{`\u00x9`, ``, false, escape.ErrInvalid},
		{`trailing\`, ``, false, escape.ErrIncomplete},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input), tc.strict)
		if tc.fail != nil {
			if !errors.Is(err, tc.fail) {
				t.Errorf("Unquote(%#q): got error %v, want %v", tc.input, err, tc.fail)
			}
			continue
		} else if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", tc.input, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"\u2028 \u2029 \u00e9", `"\u2028 \u2029 é"`},
		{"<\x1e>", `"<\u001e>"`},
		{"bad \xff byte", "\"bad \ufffd byte\""},
	}
	for _, tc := range tests {
		got := string(escape.Quote(mem.S(tc.input)))
		if got != tc.want {
			t.Errorf("Quote(%#q): got %#q, want %#q", tc.input, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"", "plain", "tab\there", "\"quoted\"", `back\slash`, "a/b",
		"\b\f\n\r\t", "control \x07 bell", "snowman \u2603 and \U0001d11e",
	}
	for _, s := range inputs {
		q := escape.Quote(mem.S(s))
		dec, err := escape.Unquote(mem.B(q[1:len(q)-1]), true)
		if err != nil {
			t.Errorf("Unquote(Quote(%#q)): %v", s, err)
		} else if string(dec) != s {
			t.Errorf("Unquote(Quote(%#q)): got %#q", s, dec)
		}
	}
}
