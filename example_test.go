// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc_test

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/ast"
)

func ExampleParse() {
	obj, err := jdoc.Parse(strings.NewReader(`{
  "name": "Alice",
  "age": 30,
  "tags": ["admin", "ops"]
}`))
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}
	for _, m := range obj {
		fmt.Printf("%s: %s\n", m.Key, m.Value.JSON())
	}
	age := obj.Find("age").Value.(ast.Number)
	fmt.Println("age is an integer:", age.IsInt())
	// Output:
	// name: "Alice"
	// age: 30
	// tags: ["admin","ops"]
	// age is an integer: true
}

func ExampleParser() {
	p := jdoc.NewParser(strings.NewReader(`{"a": [1, 2,], "a": true,}`))
	p.AllowTrailingCommas(true)
	p.DuplicateKeys(jdoc.FirstWins)

	obj, err := p.Parse()
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}
	fmt.Println(obj.JSON())
	// Output:
	// {"a":[1,2]}
}

func ExampleParseError() {
	_, err := jdoc.Parse(strings.NewReader(`{"a":}`))

	var perr *jdoc.ParseError
	if errors.As(err, &perr) {
		fmt.Println("kind:", perr.Kind)
		fmt.Println("location:", perr.Location)
	}
	fmt.Println(errors.Is(err, jdoc.UnexpectedCharacter))
	// Output:
	// kind: unexpected character
	// location: 1:5
	// true
}

func ExampleQuote() {
	q := jdoc.Quote("say \"hi\"\n")
	fmt.Println(q)

	s, err := jdoc.Unquote(q)
	if err != nil {
		log.Fatalf("Unquote: %v", err)
	}
	fmt.Printf("%q\n", s)
	// Output:
	// "say \"hi\"\n"
	// "say \"hi\"\n"
}
