package gopt

// TreeKind discriminates introspection tree nodes.
type TreeKind uint8

const (
	LeafTree TreeKind = iota
	AllOfTree
	AnyOfTree
)

// Tree is the introspection mirror of a grammar, a leaf per visible
// option grouped under required AllOf and alternative AnyOf nodes.
type Tree[B any] struct {
	Kind TreeKind
	Leaf B
	Subs []*Tree[B]
}

// LeafInfo describes the position of a leaf inside the whole grammar.
type LeafInfo struct {
	// InBind marks leaves reached inside a dependent grammar.
	InBind bool
	// Defaulted marks leaves of a choice where some alternative already
	// evaluates on its own.
	Defaulted bool
	// BesidePositional marks leaves sharing a product with a positional
	// or command leaf.
	BesidePositional bool
}

// MapTree projects a grammar into its introspection tree, annotating
// every visible leaf through f. Internal leaves are dropped and the
// result is already simplified.
func MapTree[B any](p *Parser, f func(LeafInfo, *Option) B) *Tree[B] {
	return mapTree(p, LeafInfo{}, f).Simplify()
}

func mapTree[B any](p *Parser, info LeafInfo, f func(LeafInfo, *Option) B) *Tree[B] {
	switch p.kind {
	case kindOne:
		if p.opt.Vis == Internal {
			return &Tree[B]{Kind: AllOfTree}
		}
		return &Tree[B]{Kind: LeafTree, Leaf: f(info, p.opt)}
	case kindMult:
		li, ri := info, info
		if hasPositional(p.right) {
			li.BesidePositional = true
		}
		if hasPositional(p.left) {
			ri.BesidePositional = true
		}
		return &Tree[B]{Kind: AllOfTree, Subs: []*Tree[B]{
			mapTree(p.left, li, f),
			mapTree(p.right, ri, f),
		}}
	case kindAlt:
		ci := info
		if _, ok := Eval(p.left); ok {
			ci.Defaulted = true
		} else if _, ok := Eval(p.right); ok {
			ci.Defaulted = true
		}
		return &Tree[B]{Kind: AnyOfTree, Subs: []*Tree[B]{
			mapTree(p.left, ci, f),
			mapTree(p.right, ci, f),
		}}
	case kindBind:
		bi := info
		bi.InBind = true
		src := mapTree(p.src, bi, f)
		v, ok := Eval(p.src)
		if !ok {
			return src
		}
		np := p.next(v)
		if np == nil {
			return src
		}
		return &Tree[B]{Kind: AllOfTree, Subs: []*Tree[B]{src, mapTree(np, bi, f)}}
	}
	return &Tree[B]{Kind: AllOfTree}
}

// Simplify canonicalizes a tree: nested same kind groups are flattened,
// singleton groups collapse to their sole child, empty AllOf children of
// an AnyOf are dropped and an empty AnyOf becomes an empty AllOf.
func (t *Tree[B]) Simplify() *Tree[B] {
	switch t.Kind {
	case AllOfTree:
		subs := make([]*Tree[B], 0, len(t.Subs))
		for _, s := range t.Subs {
			s = s.Simplify()
			if s.Kind == AllOfTree {
				subs = append(subs, s.Subs...)
				continue
			}
			subs = append(subs, s)
		}
		if len(subs) == 1 {
			return subs[0]
		}
		return &Tree[B]{Kind: AllOfTree, Subs: subs}
	case AnyOfTree:
		subs := make([]*Tree[B], 0, len(t.Subs))
		for _, s := range t.Subs {
			s = s.Simplify()
			switch {
			case s.Kind == AnyOfTree:
				subs = append(subs, s.Subs...)
			case s.Kind == AllOfTree && len(s.Subs) == 0:
			default:
				subs = append(subs, s)
			}
		}
		switch len(subs) {
		case 0:
			return &Tree[B]{Kind: AllOfTree}
		case 1:
			return subs[0]
		}
		return &Tree[B]{Kind: AnyOfTree, Subs: subs}
	}
	return t
}

func hasPositional(p *Parser) bool {
	found := false
	walk(p, func(o *Option) {
		switch o.Reader.(type) {
		case ArgReader, CmdReader:
			found = true
		}
	})
	return found
}
