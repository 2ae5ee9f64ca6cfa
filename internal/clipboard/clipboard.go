// Package clipboard copies converted text to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command available")

// Write copies text to the system clipboard.
func Write(text string) error {
	args := command(runtime.GOOS, exec.LookPath)
	if args == nil {
		return ErrUnavailable
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return command(runtime.GOOS, exec.LookPath) != nil
}

// command picks the copy command for goos, or nil when none is installed.
func command(goos string, lookPath func(string) (string, error)) []string {
	installed := func(name string) bool {
		_, err := lookPath(name)
		return err == nil
	}

	switch goos {
	case "darwin":
		if installed("pbcopy") {
			return []string{"pbcopy"}
		}
	case "windows":
		return []string{"cmd", "/c", "clip"}
	default:
		// Try xclip first, fall back to xsel, then Wayland.
		if installed("xclip") {
			return []string{"xclip", "-selection", "clipboard"}
		}
		if installed("xsel") {
			return []string{"xsel", "--clipboard", "--input"}
		}
		if installed("wl-copy") {
			return []string{"wl-copy"}
		}
	}
	return nil
}
