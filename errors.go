// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

import "fmt"

// ErrorKind classifies the errors reported by the parser. An ErrorKind is
// itself an error, so that callers may test for a kind with errors.Is:
//
//	if errors.Is(err, jdoc.DepthExceeded) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	SourceUnavailable    ErrorKind = iota + 1 // input could not be opened
	ReadFailed                                // input could not be read
	UnexpectedEndOfInput                      // input ended before a value closed
	UnexpectedCharacter                       // character invalid in this state
	UnterminatedString                        // input ended inside a string
	InvalidLiteral                            // bad tail of true, false, null
	InvalidEscape                             // bad escape sequence in a string
	DepthExceeded                             // nesting exceeds the maximum depth
	NumberOutOfRange                          // number is not a finite float64
	DuplicateKey                              // object key repeated
)

var kindStr = [...]string{
	SourceUnavailable:    "source unavailable",
	ReadFailed:           "read failed",
	UnexpectedEndOfInput: "unexpected end of input",
	UnexpectedCharacter:  "unexpected character",
	UnterminatedString:   "unterminated string",
	InvalidLiteral:       "invalid literal",
	InvalidEscape:        "invalid escape",
	DepthExceeded:        "depth exceeded",
	NumberOutOfRange:     "number out of range",
	DuplicateKey:         "duplicate key",
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) || kindStr[k] == "" {
		return fmt.Sprintf("error kind %d", byte(k))
	}
	return kindStr[k]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Kind     ErrorKind
	Location LineCol // where the error was detected
	Offset   int     // byte offset where the error was detected
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Kind == SourceUnavailable {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("at %s: %v: %s", e.Location, e.Kind, e.Message)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }

// Is reports whether target is the kind of e, so that errors.Is(err, kind)
// works for any ErrorKind.
func (e *ParseError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// SourceError reports a failure to open the named input as a *ParseError of
// kind SourceUnavailable wrapping err.
func SourceError(name string, err error) error {
	return &ParseError{
		Kind:    SourceUnavailable,
		Message: fmt.Sprintf("%s: %v", name, err),
		err:     err,
	}
}
