package bash

import (
	"strings"
	"testing"

	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
)

func TestBashScript(t *testing.T) {
	table := map[string]struct {
		prog string
		out  string
	}{
		"plain program name should produce install script": {
			prog: "tool",
			out: `_tool_complete() {
local IFS=$'\n'
COMPREPLY=( $(COMP_LINE="${COMP_LINE}" COMP_POINT="${COMP_POINT}" tool 2>/dev/null) )
return 0
}
complete -o default -F _tool_complete tool
`,
		},
		"program name with dashes should produce sanitized function name": {
			prog: "my-tool",
			out: `_my_tool_complete() {
local IFS=$'\n'
COMPREPLY=( $(COMP_LINE="${COMP_LINE}" COMP_POINT="${COMP_POINT}" my-tool 2>/dev/null) )
return 0
}
complete -o default -F _my_tool_complete my-tool
`,
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			out, err := driver{}.Script(gopt.Info{Prog: tcase.prog})
			if err != nil {
				t.Fatalf("script should not fail %v", err)
			}
			if tcase.out != out {
				t.Fatalf("expected output %q but got %q", tcase.out, out)
			}
		})
	}
	t.Run("registered shell should produce annotated script", func(t *testing.T) {
		out, err := complete.Script(complete.ShellNameBash, gopt.Info{Prog: "tool"})
		if err != nil {
			t.Fatalf("script should not fail %v", err)
		}
		if !strings.HasPrefix(out, "# Code generated by gopt for tool; DO NOT EDIT.\n_tool_complete() {\n") {
			t.Fatalf("expected annotated script but got %q", out)
		}
	})
}
