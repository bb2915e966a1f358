//go:build !windows && !js && !wasip1 && !plan9

// FILE: lixenwraith/passarg/fd_unix.go
package passarg

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// openDescriptor wraps an inherited descriptor for reading. The descriptor is
// checked first so a closed or invalid number fails before any handle exists.
func openDescriptor(fd int) (*os.File, error) {
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err != nil {
		return nil, fmt.Errorf("%w: fd:%d: %w", ErrIO, fd, err)
	}
	f := os.NewFile(uintptr(fd), "fd:"+strconv.Itoa(fd))
	if f == nil {
		return nil, fmt.Errorf("%w: fd:%d: %w", ErrIO, fd, os.ErrInvalid)
	}
	return f, nil
}
