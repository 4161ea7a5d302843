package zsh

import (
	"fmt"

	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
	"github.com/1pkg/gopt/complete/internal"
)

func init() {
	complete.Register(complete.ShellNameZsh, internal.Cached(internal.Annotated(new(driver))))
}

type driver struct{}

func (driver) Script(info gopt.Info) (string, error) {
	fname := fmt.Sprintf("_%s_complete", internal.Ident(info.Prog))
	var buf internal.Buffer
	buf.Appendf("%s() {", fname)
	buf.Appendf("local -a completions")
	buf.Appendf(`completions=( ${(f)"$(COMP_LINE="${BUFFER}" COMP_POINT="${CURSOR}" %s 2>/dev/null)"} )`, info.Prog)
	buf.Appendf("compadd -a completions")
	buf.Appendf("}")
	buf.Appendf("compdef %s %s", fname, info.Prog)
	return buf.String(), nil
}
