package internal

import (
	"fmt"

	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
)

type annotation struct {
	complete.Shell
}

// Annotated prefixes generated scripts with a do not edit banner.
func Annotated(s complete.Shell) complete.Shell {
	return annotation{Shell: s}
}

func (s annotation) Script(info gopt.Info) (string, error) {
	script, err := s.Shell.Script(info)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("# Code generated by gopt for %s; DO NOT EDIT.\n%s", info.Prog, script), nil
}
