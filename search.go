package gopt

// searchOut carries one search attempt out of the grammar walk: the
// rebuilt tree with exactly one leaf resolved on a match, an explicit
// committed flag that stops sibling exploration for the current token,
// or a terminal error from a leaf reader.
type searchOut struct {
	p   *Parser
	s   state
	ok  bool
	cut bool
	err error
}

// search explores the grammar depth first looking for a leaf the matcher
// accepts. Products resolve at most one side per token with the sibling
// held fixed, choices take the first successful alternative, and a bind
// falls through to its recomputed continuation once the source evaluates
// to a default. The incoming state is never modified, every branch works
// on its own copy.
func search(match matchFn, p *Parser, s state) searchOut {
	switch p.kind {
	case kindNil:
		return searchOut{}
	case kindOne:
		out := match(p.opt, s)
		if out.err != nil {
			return searchOut{err: out.err}
		}
		if !out.ok {
			return searchOut{cut: out.cut}
		}
		return searchOut{
			p:   &Parser{kind: kindNil, val: out.val, has: true},
			s:   out.s,
			ok:  true,
			cut: out.cut,
		}
	case kindMult:
		left := search(match, p.left, s)
		if left.err != nil || left.ok {
			if left.ok {
				left.p = &Parser{kind: kindMult, left: left.p, right: p.right, join: p.join}
			}
			return left
		}
		if left.cut {
			return left
		}
		right := search(match, p.right, s)
		if right.ok {
			right.p = &Parser{kind: kindMult, left: p.left, right: right.p, join: p.join}
		}
		return right
	case kindAlt:
		left := search(match, p.left, s)
		if left.err != nil || left.ok {
			if left.ok {
				left.p = &Parser{kind: kindAlt, left: left.p, right: p.right}
			}
			return left
		}
		if left.cut {
			return left
		}
		right := search(match, p.right, s)
		if right.ok {
			right.p = &Parser{kind: kindAlt, left: p.left, right: right.p}
		}
		return right
	case kindBind:
		src := search(match, p.src, s)
		if src.err != nil || src.ok {
			if src.ok {
				src.p = &Parser{kind: kindBind, src: src.p, next: p.next}
			}
			return src
		}
		if src.cut {
			return src
		}
		v, ok := Eval(p.src)
		if !ok {
			return searchOut{}
		}
		np := p.next(v)
		if np == nil {
			return searchOut{}
		}
		return search(match, np, s)
	}
	return searchOut{}
}
