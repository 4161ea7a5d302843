package fish

import (
	"fmt"

	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
	"github.com/1pkg/gopt/complete/internal"
)

func init() {
	complete.Register(complete.ShellNameFish, internal.Cached(internal.Annotated(new(driver))))
}

type driver struct{}

func (driver) Script(info gopt.Info) (string, error) {
	fname := fmt.Sprintf("__%s_complete", internal.Ident(info.Prog))
	var buf internal.Buffer
	buf.Appendf("function %s", fname)
	buf.Appendf("set -lx COMP_LINE (commandline -cp)")
	buf.Appendf("%s 2>/dev/null", info.Prog)
	buf.Appendf("end")
	buf.Appendf("complete -c %s -f -a '(%s)'", info.Prog, fname)
	return buf.String(), nil
}
