package internal

import (
	"github.com/1pkg/gopt"
	"github.com/1pkg/gopt/complete"
)

type cached struct {
	complete.Shell
	cache map[string]string
}

// Cached memoizes script generation per program name.
func Cached(s complete.Shell) complete.Shell {
	return &cached{Shell: s, cache: make(map[string]string)}
}

func (s *cached) Script(info gopt.Info) (string, error) {
	if script, ok := s.cache[info.Prog]; ok {
		return script, nil
	}
	script, err := s.Shell.Script(info)
	if err != nil {
		return "", err
	}
	s.cache[info.Prog] = script
	return script, nil
}
