package gopt

// Mod tweaks a freshly built option leaf.
type Mod func(*Option)

// Named attaches additional long or short names to an option.
func Named(names ...Name) Mod {
	return func(o *Option) {
		switch r := o.Reader.(type) {
		case ValueReader:
			r.Names = append(r.Names, names...)
			o.Reader = r
		case FlagReader:
			r.Names = append(r.Names, names...)
			o.Reader = r
		}
	}
}

// Doc sets the help text of an option.
func Doc(text string) Mod {
	return func(o *Option) {
		o.Doc = text
	}
}

// Meta sets the argument placeholder shown in usage text.
func Meta(text string) Mod {
	return func(o *Option) {
		o.Meta = text
	}
}

// Vis sets the visibility of an option.
func Vis(v Visibility) Mod {
	return func(o *Option) {
		o.Vis = v
	}
}

// Complete attaches a completer to a value option.
func Complete(c Completer) Mod {
	return func(o *Option) {
		if r, ok := o.Reader.(ValueReader); ok {
			r.Completer = c
			o.Reader = r
		}
	}
}

// Pure creates a parser that consumes nothing and yields v.
func Pure(v any) *Parser {
	return &Parser{kind: kindNil, val: v, has: true}
}

// Fail creates a parser that consumes nothing and never yields a value.
func Fail() *Parser {
	return &Parser{kind: kindNil}
}

// Opt creates a value option reading one argument with parse.
func Opt(parse ParseFunc, mods ...Mod) *Parser {
	o := Option{Reader: ValueReader{Parse: parse}}
	for _, mod := range mods {
		mod(&o)
	}
	return one(&o)
}

// Flag creates a zero argument option yielding the fixed value v.
func Flag(v any, mods ...Mod) *Parser {
	o := Option{Reader: FlagReader{Value: v}}
	for _, mod := range mods {
		mod(&o)
	}
	return one(&o)
}

// Toggle creates a boolean flag pair, --name yields true and --no-name
// yields false. The negated name is hidden from usage text.
func Toggle(name string, mods ...Mod) *Parser {
	on := Flag(true, append([]Mod{Named(Long(name))}, mods...)...)
	off := Flag(false, append([]Mod{Named(Long("no-" + name)), Vis(Hidden)}, mods...)...)
	return Alt(on, off)
}

// Arg creates a positional argument read with parse.
func Arg(parse ParseFunc, mods ...Mod) *Parser {
	o := Option{Reader: ArgReader{Parse: parse}}
	for _, mod := range mods {
		mod(&o)
	}
	return one(&o)
}

// Cmds creates a subcommand chooser over the declared commands.
func Cmds(cmds ...Command) *Parser {
	return one(&Option{Reader: CmdReader{Cmds: cmds}})
}

// Sel creates a subcommand chooser deferring word resolution to sub,
// which may reject a word by returning nil.
func Sel(sub func(name string) *Parser, mods ...Mod) *Parser {
	o := Option{Reader: CmdReader{Sub: sub}}
	for _, mod := range mods {
		mod(&o)
	}
	return one(&o)
}

// Alt combines parsers into a choice taking the first alternative that
// succeeds. With no parsers it never succeeds.
func Alt(ps ...*Parser) *Parser {
	if len(ps) == 0 {
		return Fail()
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = &Parser{kind: kindAlt, left: acc, right: p}
	}
	return acc
}

// All combines parsers into a product requiring every one of them,
// collecting their values in declaration order.
func All(ps ...*Parser) *Parser {
	acc := Pure([]any{})
	for _, p := range ps {
		acc = mult(acc, p, func(l, r any) any {
			ls := l.([]any)
			out := make([]any, 0, len(ls)+1)
			out = append(out, ls...)
			return append(out, r)
		})
	}
	return acc
}

// Map transforms the value a parser produces.
func Map(p *Parser, f func(any) any) *Parser {
	return mult(Pure(f), p, func(l, r any) any {
		return l.(func(any) any)(r)
	})
}

// Bind builds a dependent grammar, the continuation runs on the source
// value to produce the grammar for the remaining input.
func Bind(p *Parser, next func(any) *Parser) *Parser {
	return &Parser{kind: kindBind, src: p, next: next}
}

// Default makes a parser optional by falling back to v when it matched
// nothing.
func Default(p *Parser, v any) *Parser {
	return Alt(p, Pure(v))
}

type stop struct{}

// Many applies p zero or more times collecting the produced values.
func Many(p *Parser) *Parser {
	var loop func(acc []any) *Parser
	loop = func(acc []any) *Parser {
		return Bind(Default(p, stop{}), func(v any) *Parser {
			if _, done := v.(stop); done {
				return Pure(append([]any{}, acc...))
			}
			return loop(append(acc, v))
		})
	}
	return loop(nil)
}

// Some applies p one or more times collecting the produced values.
func Some(p *Parser) *Parser {
	return mult(p, Many(p), func(l, r any) any {
		return append([]any{l}, r.([]any)...)
	})
}
