package gopt

import "strings"

// Visibility controls where an option leaf surfaces outside of matching.
// Internal leaves stay matchable but are excluded from disambiguation,
// introspection and rendering.
type Visibility uint8

const (
	Visible Visibility = iota
	Hidden
	Internal
)

// Name is a single option name in its long or short form.
type Name struct {
	long  string
	short rune
}

// Long creates a long option name matched after a double dash.
func Long(name string) Name {
	return Name{long: name}
}

// Short creates a short option name matched after a single dash.
func Short(r rune) Name {
	return Name{short: r}
}

func (n Name) String() string {
	if n.long != "" {
		return "--" + n.long
	}
	if n.short != 0 {
		return "-" + string(n.short)
	}
	return ""
}

// ParseFunc converts a raw argument into a typed value.
type ParseFunc func(string) (any, error)

// Completer supplies completion candidates for a value option argument.
// It is opaque to the matching engine and is only carried through to
// missing argument errors and completion tooling.
type Completer interface {
	Complete(prefix string) []string
}

// CompleteFunc adapts a plain function to the Completer interface.
type CompleteFunc func(prefix string) []string

func (f CompleteFunc) Complete(prefix string) []string {
	return f(prefix)
}

// Reader defines how an option leaf consumes tokens. The set of readers
// is closed: ValueReader, FlagReader, ArgReader and CmdReader.
type Reader interface {
	reader()
}

// ValueReader takes an attached or following token as its argument.
type ValueReader struct {
	Names     []Name
	Parse     ParseFunc
	Completer Completer
}

// FlagReader consumes no argument and yields a fixed value on a name match.
type FlagReader struct {
	Names []Name
	Value any
}

// ArgReader matches any plain token positionally.
type ArgReader struct {
	Parse ParseFunc
}

// Command pairs a subcommand word with the grammar it selects.
type Command struct {
	Name string
	Doc  string
	Sub  *Parser
}

// CmdReader matches a plain token against a set of subcommands. The Sub
// factory takes precedence over the declared command list and may reject
// a word by returning nil.
type CmdReader struct {
	Cmds []Command
	Sub  func(name string) *Parser
}

// Select resolves a command word to its subgrammar, nil when rejected.
func (r CmdReader) Select(name string) *Parser {
	if r.Sub != nil {
		return r.Sub(name)
	}
	for _, c := range r.Cmds {
		if c.Name == name {
			return c.Sub
		}
	}
	return nil
}

func (ValueReader) reader() {}
func (FlagReader) reader()  {}
func (ArgReader) reader()   {}
func (CmdReader) reader()   {}

// Option is a single matchable grammar leaf.
type Option struct {
	Reader Reader
	Vis    Visibility
	Doc    string
	Meta   string
}

// label renders the compact display name used in error messages.
func (o *Option) label() string {
	switch r := o.Reader.(type) {
	case ValueReader:
		if len(r.Names) > 0 {
			return r.Names[0].String()
		}
	case FlagReader:
		if len(r.Names) > 0 {
			return r.Names[0].String()
		}
	case ArgReader:
		if o.Meta != "" {
			return o.Meta
		}
		return "ARG"
	case CmdReader:
		if len(r.Cmds) > 0 {
			names := make([]string, 0, len(r.Cmds))
			for _, c := range r.Cmds {
				names = append(names, c.Name)
			}
			return strings.Join(names, "|")
		}
		if o.Meta != "" {
			return o.Meta
		}
		return "COMMAND"
	}
	return ""
}
