package gopt

import "strings"

// state is the consumption snapshot one search branch operates on.
// Branches receive it by value, so a failed branch never leaks consumed
// tokens, a pushed back bundle remainder or an entered command context
// back into the driver loop.
type state struct {
	rest    []string
	policy  Policy
	atStart bool
	path    []string
	prefs   Prefs
}

func pathCopy(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	return append([]string{}, path...)
}

// matchOut reports how a single leaf responded to the current token:
// a produced value with the advanced state on a match, a commitment flag
// once a positional leaf claimed the token, or a terminal error.
type matchOut struct {
	val any
	s   state
	ok  bool
	cut bool
	err error
}

type matchFn func(o *Option, s state) matchOut

// matchName resolves a classified option token against declared names.
// Short names match exactly, long names match exactly or, under
// disambiguation, by prefix with the first declared candidate winning.
func matchName(tok token, names []Name, disambiguate bool) (Name, bool) {
	if tok.kind == tokenShort {
		for _, n := range names {
			if n.short != 0 && n.short == tok.char {
				return n, true
			}
		}
		return Name{}, false
	}
	for _, n := range names {
		if n.long != "" && n.long == tok.name {
			return n, true
		}
	}
	if disambiguate {
		for _, n := range names {
			if n.long != "" && strings.HasPrefix(n.long, tok.name) {
				return n, true
			}
		}
	}
	return Name{}, false
}

// byName builds the leaf matcher for an option shaped token.
func byName(tok token) matchFn {
	return func(o *Option, s state) matchOut {
		disambiguate := s.prefs.Disambiguate && o.Vis != Internal
		switch r := o.Reader.(type) {
		case ValueReader:
			name, ok := matchName(tok, r.Names, disambiguate)
			if !ok {
				return matchOut{}
			}
			var val string
			if tok.val != nil {
				val = *tok.val
			} else {
				if len(s.rest) == 0 {
					return matchOut{err: &MissingArgError{Name: name, Completer: r.Completer, Path: pathCopy(s.path)}}
				}
				val = s.rest[0]
				s.rest = s.rest[1:]
			}
			v, err := r.Parse(val)
			if err != nil {
				return matchOut{err: &ReaderError{Name: name, Input: val, Err: err, Path: pathCopy(s.path)}}
			}
			return matchOut{val: v, s: s, ok: true}
		case FlagReader:
			if _, ok := matchName(tok, r.Names, disambiguate); !ok {
				return matchOut{}
			}
			if tok.val != nil {
				// Flags take no value, a long match with an attached
				// value is rejected while a short match pushes the
				// bundle remainder back as a fresh short token.
				if tok.kind == tokenLong {
					return matchOut{}
				}
				s.rest = append([]string{"-" + *tok.val}, s.rest...)
			}
			return matchOut{val: r.Value, s: s, ok: true}
		default:
			return matchOut{}
		}
	}
}

// positionally builds the leaf matcher for a plain word. Inspecting an
// argument leaf commits the word to positional interpretation, accepting
// a command word hands the remaining tokens to a recursive driver run
// under a pushed context name.
func positionally(arg string) matchFn {
	return func(o *Option, s state) matchOut {
		switch r := o.Reader.(type) {
		case ArgReader:
			v, err := r.Parse(arg)
			if err != nil {
				return matchOut{cut: true, err: &ReaderError{Input: arg, Err: err, Path: pathCopy(s.path)}}
			}
			return matchOut{val: v, s: s, ok: true, cut: true}
		case CmdReader:
			sub := r.Select(arg)
			if sub == nil {
				return matchOut{}
			}
			ns := s
			ns.policy = s.prefs.Policy
			ns.atStart = true
			ns.path = append(pathCopy(s.path), arg)
			v, ns, err := run(sub, ns)
			if err != nil {
				if s.prefs.Backtrack {
					return matchOut{}
				}
				return matchOut{err: err}
			}
			fs := s
			fs.rest = ns.rest
			return matchOut{val: v, s: fs, ok: true, cut: true}
		default:
			return matchOut{}
		}
	}
}
