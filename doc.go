// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jdoc implements a recursive-descent parser for JSON documents.
//
// The parser reads its input one character at a time through a Cursor, which
// tracks the line, column, and byte offset of the read position and allows a
// single character to be pushed back. There is no separate tokenizer: each
// kind of value is decoded directly from the characters of the input.
//
// # Parsing
//
// A document is a single JSON object, optionally surrounded by whitespace.
// To parse a document with default settings, call Parse:
//
//	obj, err := jdoc.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	fmt.Println(obj.Find("name").Value)
//
// The result is an ast.Object whose members hold values of the types defined
// by the ast package: ast.Object, ast.Array, ast.String, ast.Number,
// ast.Bool, and ast.Null.
//
// To change the parser settings, construct a Parser and call its setter
// methods before calling Parse:
//
//	p := jdoc.NewParser(input)
//	p.AllowTrailingCommas(true)
//	p.DuplicateKeys(jdoc.RejectDuplicates)
//	p.SetMaxDepth(64)
//	obj, err := p.Parse()
//
// # Grammar
//
// Numbers consist of an optional minus sign, an integer part without leading
// zeroes, and an optional fraction. Exponents are not supported. Strings may
// contain the escapes \" \\ \/ \b \f \n \r \t and \uXXXX, including UTF-16
// surrogate pairs. By default other escapes decode as the escaped character;
// call StrictEscapes to reject them instead.
//
// # Errors
//
// In case of error, the parser returns a nil object and an error of concrete
// type *ParseError, which reports the kind of failure and where in the input
// it was detected. Each ErrorKind is itself an error, so callers can check
// for a specific kind of failure with errors.Is:
//
//	if errors.Is(err, jdoc.DepthExceeded) {
//	   log.Print("Input is nested too deeply")
//	}
package jdoc
