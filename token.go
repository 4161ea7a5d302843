package gopt

import (
	"strings"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokenWord tokenKind = iota
	tokenLong
	tokenShort
)

// token is a single classified command line word. Long tokens carry the
// name after the double dash and an optional value attached with '=',
// short tokens carry the first rune after the dash and the unsplit
// remainder, plain words carry only the raw text.
type token struct {
	kind tokenKind
	name string
	char rune
	val  *string
	raw  string
}

func classify(raw string) token {
	switch {
	case strings.HasPrefix(raw, "--") && len(raw) > 2:
		name := raw[2:]
		if i := strings.IndexByte(name, '='); i != -1 {
			val := name[i+1:]
			return token{kind: tokenLong, name: name[:i], val: &val, raw: raw}
		}
		return token{kind: tokenLong, name: name, raw: raw}
	case strings.HasPrefix(raw, "-") && !strings.HasPrefix(raw, "--") && len(raw) >= 2:
		char, size := utf8.DecodeRuneInString(raw[1:])
		if rest := raw[1+size:]; rest != "" {
			return token{kind: tokenShort, char: char, val: &rest, raw: raw}
		}
		return token{kind: tokenShort, char: char, raw: raw}
	default:
		return token{kind: tokenWord, raw: raw}
	}
}
