// Package clipboard copies reports to the system clipboard.
package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard available (install xclip, xsel or wl-clipboard)")

// Write copies text to the system clipboard, without the trailing newline
// reports end with.
func Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(strings.TrimRight(text, "\n"))
}

// Available reports whether a clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}
