// Package clipboard copies text to the system clipboard through the
// platform's command line tools.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool found")

// tools lists candidate commands per GOOS, in order of preference.
var tools = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"linux":   {{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
	"windows": {{"cmd", "/c", "clip"}},
}

// Command returns the argv used to write the clipboard on goos, or nil if
// none of the candidates is installed.
func Command(goos string, lookPath func(string) (string, error)) []string {
	candidates, ok := tools[goos]
	if !ok {
		candidates = tools["linux"]
	}
	for _, argv := range candidates {
		if _, err := lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	argv := Command(runtime.GOOS, exec.LookPath)
	if argv == nil {
		return ErrUnavailable
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}

// Available reports whether Write can reach a clipboard tool.
func Available() bool {
	return Command(runtime.GOOS, exec.LookPath) != nil
}
