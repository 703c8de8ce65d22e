// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jdoc/ast"
)

// DefaultMaxDepth is the maximum nesting depth of objects and arrays accepted
// by a Parser unless another limit is set. The root object has depth 1.
const DefaultMaxDepth = 1000

// DuplicatePolicy selects how a Parser handles an object key that occurs more
// than once in the same object.
type DuplicatePolicy byte

// Constants defining the valid DuplicatePolicy values.
const (
	LastWins         DuplicatePolicy = iota // keep the last value, at the position of the first key
	FirstWins                               // keep the first value, discard the rest
	KeepAll                                 // keep every member in input order
	RejectDuplicates                        // report a DuplicateKey error
)

var policyStr = [...]string{
	LastWins:         "last-wins",
	FirstWins:        "first-wins",
	KeepAll:          "keep-all",
	RejectDuplicates: "reject",
}

func (d DuplicatePolicy) String() string {
	if int(d) >= len(policyStr) {
		return fmt.Sprintf("policy %d", byte(d))
	}
	return policyStr[d]
}

// ParsePolicy returns the DuplicatePolicy whose name is s.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	for i, name := range policyStr {
		if name == s {
			return DuplicatePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown duplicate key policy %q", s)
}

// A Parser reads a single JSON document from an input stream and constructs
// its value tree. A Parser is not safe for concurrent use.
type Parser struct {
	c   *Cursor
	buf []byte // decoding buffer for strings

	depth    int
	maxDepth int
	tcomma   bool // allow trailing commas in objects and arrays
	trailing bool // allow data after the document
	strict   bool // reject unknown escape sequences
	dups     DuplicatePolicy
}

// NewParser constructs a new Parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return &Parser{c: NewCursor(r)} }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (p *Parser) AllowTrailingCommas(ok bool) { p.tcomma = ok }

// AllowTrailingData configures the parser to ignore (true) or reject (false)
// input following the closing brace of the document.
func (p *Parser) AllowTrailingData(ok bool) { p.trailing = ok }

// StrictEscapes configures the parser to reject (true) or pass through
// (false) unknown escape sequences in strings. When passed through, the
// escape "\x" decodes as x. Strict parsing also rejects invalid UTF-8 in
// strings, which otherwise decodes as U+FFFD.
func (p *Parser) StrictEscapes(ok bool) { p.strict = ok }

// SetMaxDepth sets the maximum nesting depth of objects and arrays.
// If n <= 0, DefaultMaxDepth is used.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// DuplicateKeys sets the policy for duplicate keys within an object.
// The default is LastWins.
func (p *Parser) DuplicateKeys(policy DuplicatePolicy) { p.dups = policy }

// Parse parses a JSON document from r with default settings.
func Parse(r io.Reader) (ast.Object, error) { return NewParser(r).Parse() }

// ParseFile opens and parses the JSON document in the named file with default
// settings. If the file cannot be opened, the error has kind
// SourceUnavailable.
func ParseFile(path string) (ast.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SourceError(path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a document from the input and returns its root object. The
// document must be a JSON object, optionally surrounded by whitespace. In
// case of error, Parse returns a nil object and an error of concrete type
// [*ParseError].
func (p *Parser) Parse() (obj ast.Object, err error) {
	defer p.recoverParseError(&err)

	p.depth = 0
	if ch := p.token(`"{"`); ch != '{' {
		p.unexpected(ch, `"{"`)
	}
	root := p.parseObject()

	if !p.trailing {
		if err := p.c.SkipSpace(); err == nil {
			ch, _ := p.c.Read()
			p.c.Unread()
			p.fail(UnexpectedCharacter, nil, "extra input %q after document", ch)
		} else if err != io.EOF {
			p.readFailed(err)
		}
	}
	return root, nil
}

// parseValue consumes a single value of any type, whose first character ch
// has already been read.
func (p *Parser) parseValue(ch rune) ast.Value {
	switch {
	case ch == '"':
		return ast.String(p.decodeString())
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == 't':
		p.decodeLiteral("true")
		return ast.Bool(true)
	case ch == 'f':
		p.decodeLiteral("false")
		return ast.Bool(false)
	case ch == 'n':
		p.decodeLiteral("null")
		return ast.Null{}
	case isNumStart(ch):
		return ast.Number(p.decodeNumber(ch))
	default:
		p.unexpected(ch, "value")
		panic("unreachable")
	}
}

// parseObject consumes zero or more key:value object members.
// Precondition: the opening "{" has been read.
// Postcondition: the closing "}" has been read.
func (p *Parser) parseObject() ast.Object {
	p.enter()
	obj := ast.Object{}

	var seen map[string]int // key -> index in obj
	if p.dups != KeepAll {
		seen = make(map[string]int)
	}

	want := `string or "}"`
	ch := p.token(want)
	if ch == '}' {
		p.leave()
		return obj // empty object
	}
	for {
		// Parse a single member: "key": value
		if ch != '"' {
			p.unexpected(ch, want)
		}
		key := p.decodeString()
		if _, dup := seen[key]; dup && p.dups == RejectDuplicates {
			p.fail(DuplicateKey, nil, "duplicate key %q", key)
		}
		if ch := p.token(`":"`); ch != ':' {
			p.unexpected(ch, `":"`)
		}
		val := p.parseValue(p.token("value"))
		obj = p.addMember(obj, seen, key, val)

		// Check whether we have more members (",") or are done ("}").
		ch = p.token(`"," or "}"`)
		if ch == '}' {
			break
		} else if ch != ',' {
			p.unexpected(ch, `"," or "}"`)
		}

		// If trailing commas are allowed and the next token is a close brace,
		// consider this a valid end of the object. Otherwise, it must be a key
		// for a subsequent member.
		want = "string"
		if p.tcomma {
			want = `string or "}"`
		}
		ch = p.token(want)
		if ch == '}' && p.tcomma {
			break
		}
	}
	p.leave()
	return obj
}

// addMember adds a member with the given key and value to obj subject to the
// duplicate key policy, and returns the updated object.
func (p *Parser) addMember(obj ast.Object, seen map[string]int, key string, val ast.Value) ast.Object {
	if i, ok := seen[key]; ok {
		if p.dups == LastWins {
			obj[i] = &ast.Member{Key: key, Value: val}
		}
		return obj
	} else if seen != nil {
		seen[key] = len(obj)
	}
	return append(obj, &ast.Member{Key: key, Value: val})
}

// parseArray consumes zero or more comma-separated array values.
// Precondition: the opening "[" has been read.
// Postcondition: the closing "]" has been read.
func (p *Parser) parseArray() ast.Array {
	p.enter()
	arr := ast.Array{}

	want := `value or "]"`
	ch := p.token(want)
	if ch == ']' {
		p.leave()
		return arr // empty array
	}
	for {
		arr = append(arr, p.parseValue(ch))

		ch = p.token(`"," or "]"`)
		if ch == ']' {
			break
		} else if ch != ',' {
			p.unexpected(ch, `"," or "]"`)
		}

		// If trailing commas are allowed and the next token is a close bracket,
		// consider this a valid end of the array; otherwise it will fail on the
		// next element.
		ch = p.token("value")
		if ch == ']' && p.tcomma {
			break
		}
	}
	p.leave()
	return arr
}

// enter records entry into a nested object or array.
func (p *Parser) enter() {
	p.depth++
	limit := p.maxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	if p.depth > limit {
		p.fail(DepthExceeded, nil, "nesting depth exceeds maximum %d", limit)
	}
}

func (p *Parser) leave() { p.depth-- }

// token skips whitespace and returns the next character of the input.
// At the end of input it fails, mentioning want as the expected token.
func (p *Parser) token(want string) rune {
	if err := p.c.SkipSpace(); err != nil {
		p.checkRead(err, want)
	}
	ch, err := p.c.Read()
	if err != nil {
		p.checkRead(err, want)
	}
	return ch
}

// more returns the next character of the input and true, or false at the end
// of the input.
func (p *Parser) more() (rune, bool) {
	ch, err := p.c.Read()
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		p.readFailed(err)
	}
	return ch, true
}

func (p *Parser) checkRead(err error, want string) {
	if err == io.EOF {
		p.fail(UnexpectedEndOfInput, nil, "expected %s", want)
	}
	p.readFailed(err)
}

func (p *Parser) readFailed(err error) { p.fail(ReadFailed, err, "%v", err) }

// unexpected pushes back ch and reports it as an unexpected character where
// want was expected.
func (p *Parser) unexpected(ch rune, want string) {
	p.c.Unread()
	p.fail(UnexpectedCharacter, nil, "expected %s, got %q", want, ch)
}

func (p *Parser) fail(kind ErrorKind, err error, msg string, args ...any) {
	panic(&ParseError{
		Kind:     kind,
		Location: p.c.Location(),
		Offset:   p.c.Offset(),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*ParseError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}
