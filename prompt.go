// FILE: lixenwraith/passarg/prompt.go
package passarg

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompter asks the user for one line of hidden input.
// The returned value carries no line terminator.
type Prompter interface {
	PromptPassword(label string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(label string) (string, error)

// PromptPassword calls f(label).
func (f PrompterFunc) PromptPassword(label string) (string, error) {
	return f(label)
}

// TerminalPrompter reads passwords from the controlling terminal with echo disabled.
type TerminalPrompter struct{}

// terminal is an echo-controllable input plus the writer that shows the label.
type terminal struct {
	fd    int
	out   io.Writer
	close func() error
}

// PromptPassword writes label to the terminal and reads a line without echo.
func (TerminalPrompter) PromptPassword(label string) (string, error) {
	t, err := openTerminal()
	if err != nil {
		return "", err
	}
	defer t.close()

	if _, err := io.WriteString(t.out, label); err != nil {
		return "", fmt.Errorf("%w: write prompt: %w", ErrIO, err)
	}
	pass, err := term.ReadPassword(t.fd)
	// Echo was off, so the user's newline never reached the screen
	_, _ = io.WriteString(t.out, "\n")
	if err != nil {
		return "", fmt.Errorf("%w: read password: %w", ErrIO, err)
	}
	return string(pass), nil
}

// stdinTerminal uses standard input when it is itself a terminal.
func stdinTerminal() (*terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNoTerminal
	}
	return &terminal{fd: fd, out: os.Stderr, close: func() error { return nil }}, nil
}
