// FILE: lixenwraith/passarg/handle.go
package passarg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// handle is an open, positioned line source owned by a Reader.
type handle struct {
	id        identity
	src       io.Reader
	br        *bufio.Reader // nil for streams read byte by byte
	closer    io.Closer     // nil for stdin
	exhausted bool
}

// newHandle wraps r for line reading. Buffered handles may read ahead and
// are only for sources nobody else reads (files the Reader opened itself).
// Unbuffered handles stop exactly after the "\n", leaving the rest of a
// shared stream such as stdin or an inherited descriptor to its other readers.
func newHandle(id identity, r io.Reader, closer io.Closer, buffered bool) *handle {
	h := &handle{id: id, src: r, closer: closer}
	if buffered {
		h.br = bufio.NewReader(r)
	}
	return h
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// A final unterminated line is returned once; the handle is then exhausted.
func (h *handle) readLine() (string, error) {
	if h.exhausted {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedEndOfInput, h.id)
	}

	var line string
	var err error
	if h.br != nil {
		line, err = h.br.ReadString('\n')
	} else {
		line, err = readLineExact(h.src)
	}

	switch {
	case err == nil:
		line = strings.TrimSuffix(line, "\n")
	case errors.Is(err, io.EOF):
		h.exhausted = true
		if line == "" {
			return "", fmt.Errorf("%w: %s", ErrUnexpectedEndOfInput, h.id)
		}
	default:
		return "", fmt.Errorf("%w: read %s: %w", ErrIO, h.id, err)
	}

	return strings.TrimSuffix(line, "\r"), nil
}

// readLineExact reads up to and including the next "\n" without consuming
// anything past it. Same contract as bufio.Reader.ReadString('\n').
func readLineExact(r io.Reader) (string, error) {
	if br, ok := r.(io.ByteReader); ok {
		var sb strings.Builder
		for {
			c, err := br.ReadByte()
			if err != nil {
				return sb.String(), err
			}
			sb.WriteByte(c)
			if c == '\n' {
				return sb.String(), nil
			}
		}
	}

	var sb strings.Builder
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			sb.WriteByte(b[0])
			if b[0] == '\n' {
				return sb.String(), nil
			}
		}
		if err != nil {
			return sb.String(), err
		}
	}
}

// release closes the underlying source, if the handle owns one.
func (h *handle) release() error {
	if h.closer == nil {
		return nil
	}
	c := h.closer
	h.closer = nil
	if err := c.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, h.id, err)
	}
	return nil
}
