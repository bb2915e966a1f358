//go:build windows || js || wasip1 || plan9

// FILE: lixenwraith/passarg/fd_other.go
package passarg

import (
	"fmt"
	"os"
)

func openDescriptor(fd int) (*os.File, error) {
	return nil, fmt.Errorf("%w: fd:%d on %s", ErrUnsupportedOnPlatform, fd, platform)
}
