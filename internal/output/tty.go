package output

import (
	"os"

	"golang.org/x/term"
)

// isTerminal is swapped out in tests to exercise the terminal paths.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTTY reports whether stdout is attached to a terminal. Spinners and
// styled statuses are suppressed when it returns false.
func IsTTY() bool {
	return isTerminal()
}
