// Package launcher starts the generated script in a new, visible terminal
// window. The spawn is fire-and-forget: the child is released immediately
// and its exit status is never collected; whether the DNS command inside
// the script succeeded is only visible in the opened terminal.
package launcher

import "errors"

// ErrNoTerminal is returned on Linux when none of the candidate terminal
// emulators exist on the host. The script file is already on disk at that
// point; callers report this as a warning, not a fatal error.
var ErrNoTerminal = errors.New("no terminal emulator found")

// Launch opens scriptPath in a new terminal window and returns without
// waiting for the child. Implementation is platform-specific.
func Launch(scriptPath string) error {
	return launch(scriptPath)
}

// terminal is one candidate emulator and the argument shape it needs to
// run a script in the foreground of the new window.
type terminal struct {
	name string
	args func(scriptPath string) []string
}

// terminalCandidates is the fixed preference list, tried in order. The
// first binary found on PATH wins.
var terminalCandidates = []terminal{
	{name: "gnome-terminal", args: func(s string) []string { return []string{"--", "bash", s} }},
	{name: "xterm", args: func(s string) []string { return []string{"-e", "bash", s} }},
	{name: "konsole", args: func(s string) []string { return []string{"-e", "bash", s} }},
	{name: "xfce4-terminal", args: func(s string) []string { return []string{"-x", "bash", s} }},
}

// pickTerminal returns the first candidate whose binary lookPath resolves,
// along with its full argument list for scriptPath. lookPath is injected so
// the selection order is testable on hosts without any of the emulators.
func pickTerminal(lookPath func(string) (string, error), scriptPath string) (string, []string, error) {
	for _, t := range terminalCandidates {
		if _, err := lookPath(t.name); err != nil {
			continue
		}
		return t.name, t.args(scriptPath), nil
	}
	return "", nil, ErrNoTerminal
}
