//go:build windows

// FILE: lixenwraith/passarg/prompt_windows.go
package passarg

func openTerminal() (*terminal, error) {
	return stdinTerminal()
}
