package internal

import (
	"fmt"
	"strings"
)

// Buffer accumulates script lines stripping accidental indent whitespace.
type Buffer struct {
	b strings.Builder
}

func (b *Buffer) Appendf(format string, a ...any) {
	format = strings.Trim(format, " \t\n")
	format += "\n"
	fmt.Fprintf(&b.b, format, a...)
}

func (b *Buffer) String() string {
	return b.b.String()
}
