package complete

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/1pkg/gopt"
)

// Run intercepts shell completion hook invocations of the program. When
// the hook environment is present it prints one candidate per line to w
// and reports true, otherwise it reports false and the program should
// continue normally.
func Run(info gopt.Info, getenv func(string) string, w io.Writer) bool {
	line := getenv("COMP_LINE")
	if line == "" {
		return false
	}
	point := len(line)
	if pt := getenv("COMP_POINT"); pt != "" {
		if n, err := strconv.Atoi(pt); err == nil {
			point = n
		}
	}
	for _, cand := range Suggest(info, line, point) {
		fmt.Fprintln(w, cand)
	}
	return true
}

// Suggest resolves completion candidates for a partially typed command
// line cut at point, descending into entered subcommands and matching
// the word under the cursor by prefix first and fuzzily after.
func Suggest(info gopt.Info, line string, point int) []string {
	if point >= 0 && point < len(line) {
		line = line[:point]
	}
	words, err := shlex.Split(line)
	if err != nil {
		return nil
	}
	cur := ""
	if len(words) > 0 && !strings.HasSuffix(line, " ") {
		cur, words = words[len(words)-1], words[:len(words)-1]
	}
	if len(words) > 0 {
		// The first word is the program itself.
		words = words[1:]
	}
	p := info.Root
	prev := ""
	for _, word := range words {
		prev = word
		if strings.HasPrefix(word, "-") {
			continue
		}
		if sub := descend(p, word); sub != nil {
			p = sub
		}
	}
	if comp := completer(p, prev); comp != nil {
		return filter(comp.Complete(cur), cur)
	}
	var cands []string
	dash := strings.HasPrefix(cur, "-")
	for _, o := range leaves(p) {
		if o.Vis != gopt.Visible {
			continue
		}
		switch r := o.Reader.(type) {
		case gopt.ValueReader:
			if dash || cur == "" {
				cands = append(cands, names(r.Names)...)
			}
		case gopt.FlagReader:
			if dash || cur == "" {
				cands = append(cands, names(r.Names)...)
			}
		case gopt.CmdReader:
			if !dash {
				for _, c := range r.Cmds {
					cands = append(cands, c.Name)
				}
			}
		}
	}
	return filter(cands, cur)
}

// descend resolves a typed word to the subgrammar of the command it
// names, nil when the word enters no command.
func descend(p *gopt.Parser, word string) *gopt.Parser {
	for _, o := range leaves(p) {
		if r, ok := o.Reader.(gopt.CmdReader); ok {
			if sub := r.Select(word); sub != nil {
				return sub
			}
		}
	}
	return nil
}

// completer finds the value completer of the option named by the word
// right before the cursor.
func completer(p *gopt.Parser, prev string) gopt.Completer {
	if !strings.HasPrefix(prev, "-") {
		return nil
	}
	for _, o := range leaves(p) {
		r, ok := o.Reader.(gopt.ValueReader)
		if !ok || r.Completer == nil {
			continue
		}
		for _, n := range r.Names {
			if n.String() == prev {
				return r.Completer
			}
		}
	}
	return nil
}

func leaves(p *gopt.Parser) []*gopt.Option {
	var out []*gopt.Option
	gopt.MapTree(p, func(_ gopt.LeafInfo, o *gopt.Option) *gopt.Option {
		out = append(out, o)
		return o
	})
	return out
}

func names(ns []gopt.Name) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.String())
	}
	return out
}

// filter keeps prefix matches of cur, falling back to fuzzy matches
// ranked by distance when nothing matches by prefix.
func filter(cands []string, cur string) []string {
	if cur == "" {
		return cands
	}
	prefixed := make([]string, 0, len(cands))
	for _, c := range cands {
		if strings.HasPrefix(c, cur) {
			prefixed = append(prefixed, c)
		}
	}
	if len(prefixed) > 0 {
		return prefixed
	}
	ranks := fuzzy.RankFindFold(cur, cands)
	sort.Sort(ranks)
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}
