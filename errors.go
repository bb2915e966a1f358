// FILE: lixenwraith/passarg/errors.go
package passarg

import "errors"

// Error kinds returned by Parse and Reader. Callers match them with errors.Is;
// underlying causes stay reachable through the wrap chain.
var (
	// ErrInvalidSpec indicates an argument that does not follow the passarg syntax.
	ErrInvalidSpec = errors.New("invalid password specification")

	// ErrUnsupportedOnPlatform indicates fd:N on a platform without descriptor access.
	ErrUnsupportedOnPlatform = errors.New("unsupported on this platform")

	// ErrEnvVarNotFound indicates env:VAR naming an unset variable.
	ErrEnvVarNotFound = errors.New("environment variable not found")

	// ErrUnexpectedEndOfInput indicates a line was requested from an exhausted stream.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrIO wraps operating-system failures while opening or reading a source.
	ErrIO = errors.New("i/o failure")

	// ErrClosed is returned by a Reader after Close.
	ErrClosed = errors.New("reader is closed")

	// ErrNoTerminal is returned by the terminal prompter when no terminal is attached.
	ErrNoTerminal = errors.New("cannot prompt for password without a terminal")

	// ErrSpecFileNotFound indicates a missing spec file.
	ErrSpecFileNotFound = errors.New("spec file not found")
)
