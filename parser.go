package gopt

type kind uint8

const (
	kindNil kind = iota
	kindOne
	kindMult
	kindAlt
	kindBind
)

// Parser is a composable grammar over options, flags, positional
// arguments and subcommands. Parsers are logically immutable: combinators
// and matching steps build new nodes and never modify existing ones, so a
// grammar value can be parsed any number of times.
type Parser struct {
	kind kind

	// kindNil, the embedded default when has is set.
	val any
	has bool

	// kindOne.
	opt *Option

	// kindMult and kindAlt, join combines the two sides of a product.
	left  *Parser
	right *Parser
	join  func(any, any) any

	// kindBind, next builds the dependent grammar from the source value.
	src  *Parser
	next func(any) *Parser
}

func one(o *Option) *Parser {
	return &Parser{kind: kindOne, opt: o}
}

func mult(l, r *Parser, join func(any, any) any) *Parser {
	return &Parser{kind: kindMult, left: l, right: r, join: join}
}

// Eval computes the value a parser produces when it consumes no input at
// all, reporting whether such a value exists. It is pure over the grammar
// structure and never advances any consumption state.
func Eval(p *Parser) (any, bool) {
	switch p.kind {
	case kindNil:
		return p.val, p.has
	case kindOne:
		return nil, false
	case kindMult:
		l, ok := Eval(p.left)
		if !ok {
			return nil, false
		}
		r, ok := Eval(p.right)
		if !ok {
			return nil, false
		}
		return p.join(l, r), true
	case kindAlt:
		if v, ok := Eval(p.left); ok {
			return v, true
		}
		return Eval(p.right)
	case kindBind:
		v, ok := Eval(p.src)
		if !ok {
			return nil, false
		}
		np := p.next(v)
		if np == nil {
			return nil, false
		}
		return Eval(np)
	}
	return nil, false
}

// walk visits every reachable leaf in declaration order, descending into
// a bind continuation only when its source already evaluates.
func walk(p *Parser, f func(*Option)) {
	switch p.kind {
	case kindOne:
		f(p.opt)
	case kindMult, kindAlt:
		walk(p.left, f)
		walk(p.right, f)
	case kindBind:
		walk(p.src, f)
		if v, ok := Eval(p.src); ok {
			if np := p.next(v); np != nil {
				walk(np, f)
			}
		}
	}
}
