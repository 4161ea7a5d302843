package gopt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MissingArgError reports a value option that matched by name but found
// no argument token. The option's completer rides along for completion
// and help tooling.
type MissingArgError struct {
	Name      Name
	Completer Completer
	Path      []string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("%soption %s can't be parsed, argument value is missing", errPath(e.Path), e.Name)
}

// ReaderError reports an argument that failed its reader conversion.
// The zero Name marks a positional argument.
type ReaderError struct {
	Name  Name
	Input string
	Path  []string
	Err   error
}

func (e *ReaderError) Error() string {
	if e.Name == (Name{}) {
		return fmt.Sprintf("%sargument %q can't be parsed, %v", errPath(e.Path), e.Input, e.Err)
	}
	return fmt.Sprintf("%soption %s value %q can't be parsed, %v", errPath(e.Path), e.Name, e.Input, e.Err)
}

func (e *ReaderError) Unwrap() error {
	return e.Err
}

// UnexpectedError reports a token no grammar leaf accepted and no
// default rescued.
type UnexpectedError struct {
	Token       string
	Suggestions []string
	Path        []string
}

func (e *UnexpectedError) Error() string {
	msg := fmt.Sprintf("%sargument %q is unexpected and can't be parsed", errPath(e.Path), e.Token)
	if len(e.Suggestions) > 0 {
		quoted := make([]string, 0, len(e.Suggestions))
		for _, s := range e.Suggestions {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		msg += fmt.Sprintf(", did you mean %s", strings.Join(quoted, " or "))
	}
	return msg
}

// IncompleteError reports input that ran out while the grammar still
// required more. AtStart distinguishes a command that got no tokens at
// all from one that stalled midway.
type IncompleteError struct {
	Missing []string
	AtStart bool
	Path    []string
}

func (e *IncompleteError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("%scommand line is incomplete", errPath(e.Path))
	}
	return fmt.Sprintf("%scommand line is incomplete, required %s missing", errPath(e.Path), strings.Join(e.Missing, ", "))
}

func errPath(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return strings.Join(path, " ") + ": "
}

// suggest ranks the grammar's visible names against an unmatched token.
// Option shaped tokens rank against option names, plain words against
// command words.
func suggest(p *Parser, raw string) []string {
	tok := classify(raw)
	var cands []string
	walk(p, func(o *Option) {
		if o.Vis != Visible {
			return
		}
		switch r := o.Reader.(type) {
		case ValueReader:
			if tok.kind != tokenWord {
				for _, n := range r.Names {
					cands = append(cands, n.String())
				}
			}
		case FlagReader:
			if tok.kind != tokenWord {
				for _, n := range r.Names {
					cands = append(cands, n.String())
				}
			}
		case CmdReader:
			if tok.kind == tokenWord {
				for _, c := range r.Cmds {
					cands = append(cands, c.Name)
				}
			}
		}
	})
	ranks := fuzzy.RankFindFold(raw, cands)
	sort.Sort(ranks)
	n := len(ranks)
	if n > 3 {
		n = 3
	}
	out := make([]string, 0, n)
	for _, r := range ranks[:n] {
		out = append(out, r.Target)
	}
	return out
}
