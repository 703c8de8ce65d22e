// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jdoc_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/internal/testutil"
	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
)

// Documents in the accepted grammar should produce the same values as a
// conventional JSON decoder.
var diffInputs = []string{
	`{}`,
	`{"name":"Alice","age":30}`,
	`{"person":{"first":"Alice","last":"Smith"}}`,
	`{"active":true,"data":null}`,
	`{"numbers":[1,2,3]}`,
	`{"n":[0,-0.5,30,3.14159,-12,1234567890123,0.1,0.30000000000000004]}`,
	`{"deep":{"a":[{"b":[[],[{}]]}],"c":{"d":{"e":"f"}}}}`,
	`{"s":"tab\there \"quoted\" back\\slash \/ \u00e9 \ud83d\ude00"}`,
	`{ "spaced" : [ true , false , null ] ,
	  "lines"  : "x"
	}`,
	`{"":"","  ":[""]}`,
}

func TestDifferential(t *testing.T) {
	for _, input := range diffInputs {
		var want any
		if err := json.Unmarshal([]byte(input), &want); err != nil {
			t.Fatalf("Unmarshal %#q: %v", input, err)
		}
		obj, err := jdoc.Parse(strings.NewReader(input))
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", input, err)
			continue
		}
		if diff := cmp.Diff(testutil.ToAny(obj), want); diff != "" {
			t.Errorf("Parse %#q (-got, +want):\n%s", input, diff)
		}

		// Rendering the tree and parsing it again yields the same values.
		again, err := jdoc.Parse(strings.NewReader(obj.JSON()))
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", obj.JSON(), err)
			continue
		}
		if diff := cmp.Diff(again, obj); diff != "" {
			t.Errorf("Reparse %#q (-got, +want):\n%s", input, diff)
		}
	}
}
