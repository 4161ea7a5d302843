package fish

import (
	"strings"
	"testing"

	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
)

func TestFishScript(t *testing.T) {
	table := map[string]struct {
		prog string
		out  string
	}{
		"plain program name should produce install script": {
			prog: "tool",
			out: `function __tool_complete
set -lx COMP_LINE (commandline -cp)
tool 2>/dev/null
end
complete -c tool -f -a '(__tool_complete)'
`,
		},
		"program name with dashes should produce sanitized function name": {
			prog: "my-tool",
			out: `function __my_tool_complete
set -lx COMP_LINE (commandline -cp)
my-tool 2>/dev/null
end
complete -c my-tool -f -a '(__my_tool_complete)'
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
		out, err := complete.Script(complete.ShellNameFish, gopt.Info{Prog: "tool"})
		if err != nil {
			t.Fatalf("script should not fail %v", err)
		}
		if !strings.HasPrefix(out, "# Code generated by gopt for tool; DO NOT EDIT.\nfunction __tool_complete\n") {
			t.Fatalf("expected annotated script but got %q", out)
		}
	})
}
