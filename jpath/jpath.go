// Package jpath implements a minimal JSONPath language for selecting values
// from a parsed document.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ("," INDEX)*
 value = [INDEX] ":" [INDEX]

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

Script "(...)" and filter "?(...)" steps are recognized but not supported.

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var out Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", t, err)
		}
		out = append(out, step)
		t = rest
	}
	return out, nil
}

// MustParse parses s as a JSONPath expression, and panics if it is invalid.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jpath: %v", err))
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Descend, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, quoted, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		}
		return Step{Op: Child, Name: name, Quoted: quoted}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, u, err := parseBracket(t)
		if err != nil {
			return Step{}, t, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (name string, quoted bool, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return "*", false, t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], false, s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], true, s[len(m[0]):], nil
	}
	return "", false, s, errors.New("invalid name")
}

// parseBracket parses the contents of a bracketed step, up to but not
// including the closing bracket.
func parseBracket(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "?(") || strings.HasPrefix(s, "(") {
		return Step{}, s, errors.New("script and filter steps are not supported")
	}

	// Slice: [lo]:[hi]
	lo, u, loErr := parseInt(s)
	if t, ok := strings.CutPrefix(u, ":"); ok {
		step := Step{Op: Slice}
		if loErr == nil {
			step.Lo = &lo
		}
		if hi, v, err := parseInt(t); err == nil {
			step.Hi = &hi
			t = v
		}
		return step, t, nil
	}

	// Index list: INDEX ("," INDEX)*
	if loErr == nil {
		step := Step{Op: Index, Indexes: []int{lo}}
		for {
			t, ok := strings.CutPrefix(u, ",")
			if !ok {
				return step, u, nil
			}
			next, v, err := parseInt(t)
			if err != nil {
				return Step{}, t, err
			}
			step.Indexes = append(step.Indexes, next)
			u = v
		}
	}

	// Name: word, quoted text, or wildcard.
	name, quoted, u, err := parseName(s)
	if err != nil {
		return Step{}, s, fmt.Errorf("invalid value: %q", s)
	}
	return Step{Op: Child, Name: name, Quoted: quoted, Bracket: true}, u, nil
}

func parseInt(s string) (int, string, error) {
	m := indexRE.FindString(s)
	if m == "" {
		return 0, s, errors.New("invalid index")
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, s, err
	}
	return v, s[len(m):], nil
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^-?\d+`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Child             // child member lookup (.name, ['name'], [*])
	Descend           // descendant lookup (..name)
	Index             // array index lookup ([1,2])
	Slice             // array slice ([lo:hi])
)

var opText = [...]string{
	Invalid: "invalid",
	Child:   "child",
	Descend: "descend",
	Index:   "index",
	Slice:   "slice",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op Op

	// Child and Descend steps select object members by Name, or every
	// member or element if Name is "*" and not Quoted.
	Name    string
	Quoted  bool
	Bracket bool // the name was written in brackets

	Indexes []int // for Index
	Lo, Hi  *int  // for Slice; nil bounds are open
}

// IsWildcard reports whether s selects every member or element.
func (s Step) IsWildcard() bool { return s.Name == "*" && !s.Quoted }

func (s Step) String() string {
	switch s.Op {
	case Child, Descend:
		name := s.Name
		if s.Quoted {
			name = "'" + name + "'"
		}
		if s.Bracket {
			return "[" + name + "]"
		} else if s.Op == Descend {
			return ".." + name
		}
		return "." + name

	case Index:
		parts := make([]string, len(s.Indexes))
		for i, v := range s.Indexes {
			parts[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(parts, ",") + "]"

	case Slice:
		var lo, hi string
		if s.Lo != nil {
			lo = strconv.Itoa(*s.Lo)
		}
		if s.Hi != nil {
			hi = strconv.Itoa(*s.Hi)
		}
		return "[" + lo + ":" + hi + "]"
	}
	return "[invalid]"
}
