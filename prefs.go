package gopt

// Prefs carries the read-only preferences threaded through one whole
// parse. The zero value means interspersed parsing with no
// disambiguation and no subcommand backtracking.
type Prefs struct {
	// Policy selects the initial consumption policy of the driver loop.
	Policy Policy
	// Disambiguate lets unambiguous long name prefixes match.
	Disambiguate bool
	// Backtrack lets outer alternatives continue after a matched
	// subcommand fails, instead of failing the whole parse.
	Backtrack bool
	// Columns caps usage rendering width, 0 autodetects the terminal.
	Columns int
}

// DefaultPrefs returns the preferences most programs want, subcommand
// backtracking on and everything else at its zero value.
func DefaultPrefs() Prefs {
	return Prefs{Backtrack: true}
}

// Info describes a program for usage rendering and shell completion.
// The matching engine itself never reads it.
type Info struct {
	Prog    string
	Desc    string
	Header  string
	Footer  string
	Version string
	Root    *Parser
	Prefs   Prefs
}
