package internal

import (
	"strings"
	"unicode"
)

// Ident converts a program name into a safe shell identifier.
func Ident(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}
	s := b.String()
	if s == "" || unicode.IsDigit(rune(s[0])) {
		return "_" + s
	}
	return s
}
