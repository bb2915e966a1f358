// FILE: lixenwraith/passarg/reader.go
package passarg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Reader resolves password arguments and owns every file-like source it opens.
//
// Specifications naming the same file path, the same descriptor number or
// stdin share one positioned handle, so successive calls receive successive
// lines. The order of calls therefore decides which value gets which line and
// should be documented by the caller (for example: input password first,
// then output password, as OpenSSL does).
//
// A Reader is not safe for concurrent use. Close releases opened files and
// descriptors; standard input is never closed.
type Reader struct {
	handles map[identity]*handle
	closed  bool

	lookupEnv func(string) (string, bool)
	canonical func(string) (string, error)
	openFile  func(string) (io.ReadCloser, error)
	openFD    func(int) (io.ReadCloser, error)
	stdin     io.Reader
	prompter  Prompter
	logger    *slog.Logger
}

// NewReader creates a Reader bound to the process environment, filesystem,
// standard input and controlling terminal. It opens nothing until used.
func NewReader() *Reader {
	return NewBuilder().Build()
}

// ReadPassArg parses arg and resolves it to a password.
// See the package documentation for the accepted forms.
func (r *Reader) ReadPassArg(arg string) (string, error) {
	spec, err := Parse(arg)
	if err != nil {
		return "", err
	}
	return r.Resolve(spec)
}

// ReadPassArgs resolves args strictly in order, stopping at the first failure.
func (r *Reader) ReadPassArgs(args ...string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		pass, err := r.ReadPassArg(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, pass)
	}
	return out, nil
}

// Resolve returns the password described by spec.
func (r *Reader) Resolve(spec Spec) (string, error) {
	if r.closed {
		return "", ErrClosed
	}

	switch spec.Kind {
	case KindLiteral:
		return spec.Text, nil

	case KindEnv:
		val, ok := r.lookupEnv(spec.Name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrEnvVarNotFound, spec.Name)
		}
		return val, nil

	case KindPrompt:
		return r.prompter.PromptPassword(spec.Label())

	case KindFile, KindDescriptor, KindStdin:
		h, err := r.handleFor(spec)
		if err != nil {
			return "", err
		}
		return r.readLine(h)
	}

	return "", fmt.Errorf("%w: unknown kind %s", ErrInvalidSpec, spec.Kind)
}

// handleFor returns the registered handle for spec's identity, opening it on
// first use. Nothing is registered when the open fails.
func (r *Reader) handleFor(spec Spec) (*handle, error) {
	var id identity
	switch spec.Kind {
	case KindFile:
		path, err := r.canonical(spec.Path)
		if err != nil {
			if !errors.Is(err, ErrIO) {
				err = fmt.Errorf("%w: resolve %s: %w", ErrIO, spec.Path, err)
			}
			return nil, err
		}
		id = identity{kind: KindFile, path: path}
	case KindDescriptor:
		if !DescriptorsSupported() {
			return nil, fmt.Errorf("%w: fd:%d on %s", ErrUnsupportedOnPlatform, spec.FD, platform)
		}
		id = identity{kind: KindDescriptor, fd: spec.FD}
	default:
		id = stdinIdentity
	}

	if h, ok := r.handles[id]; ok {
		return h, nil
	}

	var h *handle
	switch id.kind {
	case KindFile:
		f, err := r.openFile(id.path)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %w", ErrIO, spec.Path, err)
		}
		h = newHandle(id, f, f, true)
	case KindDescriptor:
		f, err := r.openFD(id.fd)
		if err != nil {
			return nil, err
		}
		// Inherited descriptors may be read by others after us
		h = newHandle(id, f, f, false)
	default:
		h = newHandle(id, r.stdin, nil, false)
	}

	r.handles[id] = h
	r.logger.Debug("opened password source", "source", id.String())
	return h, nil
}

func (r *Reader) readLine(h *handle) (string, error) {
	wasExhausted := h.exhausted
	line, err := h.readLine()
	if h.exhausted && !wasExhausted {
		r.logger.Debug("password source exhausted", "source", h.id.String())
		if rerr := h.release(); rerr != nil {
			r.logger.Warn("failed to release password source", "source", h.id.String(), "error", rerr)
		}
	}
	return line, err
}

// Close releases every file and descriptor opened by the Reader.
// It is safe to call more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error
	for id, h := range r.handles {
		if err := h.release(); err != nil {
			errs = append(errs, err)
		}
		r.logger.Debug("closed password source", "source", id.String())
	}
	r.handles = nil
	return errors.Join(errs...)
}
