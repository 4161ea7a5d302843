package bash

import (
	"fmt"

	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
	"github.com/1pkg/gopt/complete/internal"
)

func init() {
	complete.Register(complete.ShellNameBash, internal.Cached(internal.Annotated(new(driver))))
}

type driver struct{}

func (driver) Script(info gopt.Info) (string, error) {
	fname := fmt.Sprintf("_%s_complete", internal.Ident(info.Prog))
	var buf internal.Buffer
	buf.Appendf("%s() {", fname)
	buf.Appendf(`local IFS=$'\n'`)
	buf.Appendf(`COMPREPLY=( $(COMP_LINE="${COMP_LINE}" COMP_POINT="${COMP_POINT}" %s 2>/dev/null) )`, info.Prog)
	buf.Appendf("return 0")
	buf.Appendf("}")
	buf.Appendf("complete -o default -F %s %s", fname, info.Prog)
	return buf.String(), nil
}
