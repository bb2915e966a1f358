//go:build !windows

// FILE: lixenwraith/passarg/prompt_unix.go
package passarg

import "os"

// openTerminal prefers /dev/tty so prompting works while stdin is redirected.
func openTerminal() (*terminal, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return stdinTerminal()
	}
	return &terminal{fd: int(f.Fd()), out: f, close: f.Close}, nil
}
