package gopt

// Policy governs whether the next token may be treated as an option at
// all, or only positionally.
type Policy uint8

const (
	// Intersperse allows options and positionals to mix freely.
	Intersperse Policy = iota
	// NoIntersperse flips to AllPositionals permanently on the first
	// plain word.
	NoIntersperse
	// AllPositionals treats every token positionally.
	AllPositionals
	// ForwardOptions tries option matching first and falls back to
	// positional matching for unrecognized option shaped tokens.
	ForwardOptions
)

// Parse runs a grammar over the provided arguments and returns the value
// it produces. Arguments the grammar does not consume are an error at
// this level.
func Parse(p *Parser, args []string, prefs Prefs) (any, error) {
	v, rest, err := ParseArgs(p, args, prefs)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, &UnexpectedError{Token: rest[0], Suggestions: suggest(p, rest[0])}
	}
	return v, nil
}

// ParseArgs is Parse for embedding, it hands unconsumed arguments back to
// the caller instead of rejecting them.
func ParseArgs(p *Parser, args []string, prefs Prefs) (any, []string, error) {
	v, s, err := run(p, state{rest: args, policy: prefs.Policy, atStart: true, prefs: prefs})
	if err != nil {
		return nil, nil, err
	}
	return v, s.rest, nil
}

// run is the driver loop: classify the head token, search the grammar
// under the active policy, swap in the resolved grammar and repeat until
// the tokens run out or nothing matches.
func run(p *Parser, s state) (any, state, error) {
	for {
		if len(s.rest) > 0 && s.rest[0] == "--" && s.policy != AllPositionals {
			s.policy = AllPositionals
			s.rest = s.rest[1:]
			s.atStart = false
			continue
		}
		if len(s.rest) == 0 {
			v, ok := Eval(p)
			if !ok {
				return nil, s, &IncompleteError{Missing: missingNames(p), AtStart: s.atStart, Path: pathCopy(s.path)}
			}
			return v, s, nil
		}
		arg := s.rest[0]
		ns := s
		ns.rest = s.rest[1:]
		tok := classify(arg)
		var res searchOut
		switch {
		case s.policy == AllPositionals:
			res = search(positionally(arg), p, ns)
		case s.policy == ForwardOptions && tok.kind != tokenWord:
			res = search(byName(tok), p, ns)
			if res.err == nil && !res.ok {
				res = search(positionally(arg), p, ns)
			}
		case tok.kind != tokenWord:
			res = search(byName(tok), p, ns)
		default:
			res = search(positionally(arg), p, ns)
		}
		if res.err != nil {
			return nil, s, res.err
		}
		if !res.ok {
			// An unmatched token is rescued by a grammar that already
			// evaluates, the token stays unconsumed as leftover.
			if v, ok := Eval(p); ok {
				return v, s, nil
			}
			return nil, s, &UnexpectedError{Token: arg, Suggestions: suggest(p, arg), Path: pathCopy(s.path)}
		}
		p = res.p
		s = res.s
		if s.policy == NoIntersperse && tok.kind == tokenWord {
			s.policy = AllPositionals
		}
		s.atStart = false
	}
}

// missingNames collects display names of the required leaves that keep a
// grammar from evaluating, walking only the sides that cannot evaluate
// on their own.
func missingNames(p *Parser) []string {
	if _, ok := Eval(p); ok {
		return nil
	}
	switch p.kind {
	case kindOne:
		if p.opt.Vis == Internal {
			return nil
		}
		return []string{p.opt.label()}
	case kindMult:
		return append(missingNames(p.left), missingNames(p.right)...)
	case kindAlt:
		return append(missingNames(p.left), missingNames(p.right)...)
	case kindBind:
		return missingNames(p.src)
	}
	return nil
}
