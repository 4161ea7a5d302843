package gopt

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	sptr := func(s string) *string {
		return &s
	}
	table := map[string]struct {
		raw string
		tok token
	}{
		"plain word should classify as word": {
			raw: "file.txt",
			tok: token{kind: tokenWord, raw: "file.txt"},
		},
		"empty string should classify as word": {
			raw: "",
			tok: token{kind: tokenWord, raw: ""},
		},
		"single dash should classify as word": {
			raw: "-",
			tok: token{kind: tokenWord, raw: "-"},
		},
		"double dash should classify as word": {
			raw: "--",
			tok: token{kind: tokenWord, raw: "--"},
		},
		"long option should carry its name": {
			raw: "--out",
			tok: token{kind: tokenLong, name: "out", raw: "--out"},
		},
		"long option with value should split on the first equals": {
			raw: "--out=a=b",
			tok: token{kind: tokenLong, name: "out", val: sptr("a=b"), raw: "--out=a=b"},
		},
		"long option with empty value should keep the empty string": {
			raw: "--out=",
			tok: token{kind: tokenLong, name: "out", val: sptr(""), raw: "--out="},
		},
		"triple dash should classify as long": {
			raw: "---x",
			tok: token{kind: tokenLong, name: "-x", raw: "---x"},
		},
		"short option should carry its rune": {
			raw: "-v",
			tok: token{kind: tokenShort, char: 'v', raw: "-v"},
		},
		"short option with remainder should keep it attached": {
			raw: "-vout",
			tok: token{kind: tokenShort, char: 'v', val: sptr("out"), raw: "-vout"},
		},
		"multibyte short option should decode one rune": {
			raw: "-über",
			tok: token{kind: tokenShort, char: 'ü', val: sptr("ber"), raw: "-über"},
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			tok := classify(tcase.raw)
			if !reflect.DeepEqual(tcase.tok, tok) {
				t.Fatalf("expected token %#v but got %#v", tcase.tok, tok)
			}
		})
	}
}
