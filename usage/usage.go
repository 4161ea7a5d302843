package usage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/term"

	"github.com/1pkg/gopt"
)

// entry is the rendering payload one grammar leaf projects to.
type entry struct {
	section   string
	syn       string
	names     string
	doc       string
	cmds      [][2]string
	hidden    bool
	defaulted bool
}

// Render writes the full help text for the program described by info,
// a synopsis line derived from the grammar shape followed by aligned
// option, argument and command listings.
func Render(w io.Writer, info gopt.Info) error {
	cols := Width(info.Prefs)
	tree := gopt.MapTree(info.Root, describe)
	bold := color.New(color.Bold).SprintFunc()
	blocks := make([]string, 0, 8)
	if info.Version != "" {
		blocks = append(blocks, fmt.Sprintf("%s %s", info.Prog, info.Version))
	}
	if info.Header != "" {
		blocks = append(blocks, wrap(info.Header, cols, 0))
	}
	syn := synopsis(tree)
	if tree.Kind == gopt.LeafTree && tree.Leaf.defaulted && syn != "" {
		syn = "[" + syn + "]"
	}
	useline := bold("Usage:") + " " + info.Prog
	if syn != "" {
		useline += " " + wrap(syn, cols, len("Usage: "+info.Prog)+1)
	}
	blocks = append(blocks, useline)
	if info.Desc != "" {
		blocks = append(blocks, wrap(info.Desc, cols, 0))
	}
	sections := orderedmap.New[string, [][2]string]()
	collect(tree, sections)
	for pair := sections.Oldest(); pair != nil; pair = pair.Next() {
		rows := pair.Value
		leftw := 0
		for _, row := range rows {
			if l := len(row[0]); l > leftw {
				leftw = l
			}
		}
		lines := make([]string, 0, len(rows)+1)
		lines = append(lines, bold(pair.Key+":"))
		for _, row := range rows {
			if row[1] == "" {
				lines = append(lines, "  "+row[0])
				continue
			}
			lead := fmt.Sprintf("  %-*s  ", leftw, row[0])
			lines = append(lines, lead+wrap(row[1], cols, len(lead)))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if info.Footer != "" {
		blocks = append(blocks, wrap(info.Footer, cols, 0))
	}
	_, err := fmt.Fprint(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}

// Width resolves the rendering width, preferring explicit preferences
// over the attached terminal and falling back to classic 80 columns.
func Width(prefs gopt.Prefs) int {
	if prefs.Columns > 0 {
		return prefs.Columns
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

func describe(info gopt.LeafInfo, o *gopt.Option) entry {
	e := entry{
		doc:       o.Doc,
		hidden:    o.Vis == gopt.Hidden,
		defaulted: info.Defaulted,
	}
	meta := o.Meta
	switch r := o.Reader.(type) {
	case gopt.ValueReader:
		if meta == "" {
			meta = "ARG"
		}
		e.section = "Options"
		e.syn = strings.TrimSpace(first(r.Names) + " " + meta)
		e.names = strings.TrimSpace(names(r.Names) + " " + meta)
	case gopt.FlagReader:
		e.section = "Options"
		e.syn = first(r.Names)
		e.names = names(r.Names)
	case gopt.ArgReader:
		if meta == "" {
			meta = "ARG"
		}
		e.section = "Arguments"
		e.syn = meta
		e.names = meta
	case gopt.CmdReader:
		if meta == "" {
			meta = "COMMAND"
		}
		e.section = "Commands"
		e.syn = meta
		for _, c := range r.Cmds {
			e.cmds = append(e.cmds, [2]string{c.Name, c.Doc})
		}
	}
	return e
}

func first(ns []gopt.Name) string {
	if len(ns) == 0 {
		return ""
	}
	return ns[0].String()
}

func names(ns []gopt.Name) string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.String())
	}
	return strings.Join(out, ", ")
}

// synopsis folds the tree into the one line grammar summary, leaves
// with a default wrapped in brackets and choices grouped with pipes.
func synopsis(t *gopt.Tree[entry]) string {
	switch t.Kind {
	case gopt.LeafTree:
		if t.Leaf.hidden {
			return ""
		}
		return t.Leaf.syn
	case gopt.AnyOfTree:
		parts := make([]string, 0, len(t.Subs))
		for _, sub := range t.Subs {
			if s := synopsis(sub); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		group := strings.Join(parts, " | ")
		if allDefaulted(t) {
			return "[" + group + "]"
		}
		if len(parts) == 1 {
			return group
		}
		return "(" + group + ")"
	default:
		parts := make([]string, 0, len(t.Subs))
		for _, sub := range t.Subs {
			s := synopsis(sub)
			if s == "" {
				continue
			}
			if sub.Kind == gopt.LeafTree && sub.Leaf.defaulted {
				s = "[" + s + "]"
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " ")
	}
}

func allDefaulted(t *gopt.Tree[entry]) bool {
	if t.Kind == gopt.LeafTree {
		return t.Leaf.defaulted || t.Leaf.hidden
	}
	for _, sub := range t.Subs {
		if !allDefaulted(sub) {
			return false
		}
	}
	return true
}

func collect(t *gopt.Tree[entry], sections *orderedmap.OrderedMap[string, [][2]string]) {
	if t.Kind != gopt.LeafTree {
		for _, sub := range t.Subs {
			collect(sub, sections)
		}
		return
	}
	e := t.Leaf
	if e.hidden {
		return
	}
	if e.section == "Commands" {
		if len(e.cmds) > 0 {
			rows, _ := sections.Get(e.section)
			sections.Set(e.section, append(rows, e.cmds...))
		}
		return
	}
	rows, _ := sections.Get(e.section)
	sections.Set(e.section, append(rows, [2]string{e.names, e.doc}))
}

// wrap greedily folds s into lines that start at column offset and stay
// inside width, continuation lines padded back to the same column.
func wrap(s string, width, offset int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	pad := strings.Repeat(" ", offset)
	lines := make([]string, 0, 1)
	line := words[0]
	for _, word := range words[1:] {
		if offset+len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+pad)
}
