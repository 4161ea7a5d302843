package gopt

import (
	"reflect"
	"testing"
)

func TestEval(t *testing.T) {
	table := map[string]struct {
		p   *Parser
		val any
		ok  bool
	}{
		"pure should evaluate to its value": {
			p:   Pure(42),
			val: 42,
			ok:  true,
		},
		"fail should not evaluate": {
			p: Fail(),
		},
		"bare option should not evaluate": {
			p: Opt(Str(), Named(Long("x"))),
		},
		"product of pures should evaluate to the joined values": {
			p:   All(Pure(1), Pure(2)),
			val: []any{1, 2},
			ok:  true,
		},
		"product with a bare option should not evaluate": {
			p: All(Pure(1), Flag(true, Named(Long("x")))),
		},
		"choice should evaluate to the first alternative that does": {
			p:   Alt(Flag(true, Named(Long("x"))), Pure("fallback")),
			val: "fallback",
			ok:  true,
		},
		"choice of pures should evaluate to the left one": {
			p:   Alt(Pure("l"), Pure("r")),
			val: "l",
			ok:  true,
		},
		"bind should evaluate through its continuation": {
			p: Bind(Pure(2), func(v any) *Parser {
				return Pure(v.(int) * 3)
			}),
			val: 6,
			ok:  true,
		},
		"bind should not evaluate before its source": {
			p: Bind(Flag(true, Named(Long("x"))), func(v any) *Parser {
				return Pure("unreachable")
			}),
		},
		"map should evaluate through the transform": {
			p: Map(Pure(2), func(v any) any {
				return v.(int) * 2
			}),
			val: 4,
			ok:  true,
		},
		"many should evaluate to an empty collection": {
			p:   Many(Flag(true, Named(Long("x")))),
			val: []any{},
			ok:  true,
		},
		"some should not evaluate": {
			p: Some(Flag(true, Named(Long("x")))),
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			val, ok := Eval(tcase.p)
			if tcase.ok != ok {
				t.Fatalf("expected ok %v but got %v", tcase.ok, ok)
			}
			if !reflect.DeepEqual(tcase.val, val) {
				t.Fatalf("expected value %#v but got %#v", tcase.val, val)
			}
		})
	}
}

func TestWalkOrder(t *testing.T) {
	p := All(
		Flag(true, Named(Long("a"))),
		Alt(
			Flag(true, Named(Long("b"))),
			Arg(Str(), Meta("C")),
		),
		Bind(Default(Flag(true, Named(Long("d"))), false), func(any) *Parser {
			return Flag(true, Named(Long("e")))
		}),
	)
	var names []string
	walk(p, func(o *Option) {
		names = append(names, o.label())
	})
	expected := []string{"--a", "--b", "C", "--d", "--e"}
	if !reflect.DeepEqual(expected, names) {
		t.Fatalf("expected leaves %#v but got %#v", expected, names)
	}
}
