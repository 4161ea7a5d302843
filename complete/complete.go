package complete

import (
	"fmt"
	"sync"

	"github.com/1pkg/gopt"
)

// ShellName holds names of supported shell flavors.
type ShellName string

const (
	ShellNameBash ShellName = "bash"
	ShellNameZsh  ShellName = "zsh"
	ShellNameFish ShellName = "fish"
)

// Shell generates the completion install script of one shell flavor.
type Shell interface {
	Script(info gopt.Info) (string, error)
}

var (
	shellsMu sync.Mutex
	shells   = make(map[ShellName]Shell)
)

// Register makes a completion shell available by the provided name.
// If Register is called twice with the same name or if shell is nil, it panics.
func Register(name ShellName, shell Shell) {
	shellsMu.Lock()
	defer shellsMu.Unlock()
	if shell == nil {
		panic("register shell is nil")
	}
	if _, dup := shells[name]; dup {
		panic(fmt.Errorf("register called twice for shell %q", name))
	}
	shells[name] = shell
}

// Script renders the completion install script for the named shell.
func Script(name ShellName, info gopt.Info) (string, error) {
	shellsMu.Lock()
	defer shellsMu.Unlock()
	shell, ok := shells[name]
	if !ok {
		return "", fmt.Errorf("unknown shell %q (forgotten import?)", name)
	}
	return shell.Script(info)
}
