package internal

import "testing"

func TestBuffer(t *testing.T) {
	table := map[string]struct {
		lines []string
		args  [][]any
		out   string
	}{
		"empty buffer should produce nothing": {
			out: "",
		},
		"lines should be terminated with newlines": {
			lines: []string{"first", "second"},
			args:  [][]any{nil, nil},
			out:   "first\nsecond\n",
		},
		"surrounding whitespace should be stripped": {
			lines: []string{"\n\t first \t", "\t\tsecond\n\n"},
			args:  [][]any{nil, nil},
			out:   "first\nsecond\n",
		},
		"format verbs should be expanded": {
			lines: []string{"echo %s %d"},
			args:  [][]any{{"tool", 42}},
			out:   "echo tool 42\n",
		},
	}
	for tname, tcase := range table {
		t.Run(tname, func(t *testing.T) {
			var buf Buffer
			for i, line := range tcase.lines {
				buf.Appendf(line, tcase.args[i]...)
			}
			if out := buf.String(); out != tcase.out {
				t.Fatalf("expected output %q but got %q", tcase.out, out)
			}
		})
	}
}
