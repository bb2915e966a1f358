// File: lixenwraith/passarg/builder.go
package passarg

import (
	"io"
	"log/slog"
	"os"
)

// Builder provides a fluent interface for building a Reader with
// substituted collaborators.
type Builder struct {
	lookupEnv func(string) (string, bool)
	canonical func(string) (string, error)
	openFile  func(string) (io.ReadCloser, error)
	stdin     io.Reader
	prompter  Prompter
	logger    *slog.Logger
}

// NewBuilder creates a builder preset to the process environment, the
// filesystem, os.Stdin, the terminal prompter and a discarding logger.
func NewBuilder() *Builder {
	return &Builder{
		lookupEnv: os.LookupEnv,
		canonical: canonicalPath,
		openFile:  openOSFile,
		stdin:     os.Stdin,
		prompter:  TerminalPrompter{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLookupEnv sets the environment lookup used by env: specifications
func (b *Builder) WithLookupEnv(fn func(string) (string, bool)) *Builder {
	if fn != nil {
		b.lookupEnv = fn
	}
	return b
}

// WithEnv serves env: specifications from a fixed map instead of the process environment
func (b *Builder) WithEnv(env map[string]string) *Builder {
	return b.WithLookupEnv(func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	})
}

// WithCanonicalPath sets how file: paths are turned into source identities.
// Paths with equal results share one line position. The default makes the path
// absolute and resolves symlinks, which requires the file to exist on disk;
// openers serving virtual paths pair with a canonicalizer that does not stat.
func (b *Builder) WithCanonicalPath(fn func(path string) (string, error)) *Builder {
	if fn != nil {
		b.canonical = fn
	}
	return b
}

// WithOpenFile sets how file: paths are opened. The path passed is the
// canonical one, see WithCanonicalPath.
func (b *Builder) WithOpenFile(fn func(path string) (io.ReadCloser, error)) *Builder {
	if fn != nil {
		b.openFile = fn
	}
	return b
}

// WithStdin sets the stream behind the stdin specification. The Reader never closes it.
func (b *Builder) WithStdin(r io.Reader) *Builder {
	if r != nil {
		b.stdin = r
	}
	return b
}

// WithPrompter sets the collaborator used by prompt specifications
func (b *Builder) WithPrompter(p Prompter) *Builder {
	if p != nil {
		b.prompter = p
	}
	return b
}

// WithLogger sets the logger for source lifecycle events. Secrets are never logged.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Build creates the Reader. Every call returns an independent Reader with
// an empty source registry.
func (b *Builder) Build() *Reader {
	return &Reader{
		handles:   make(map[identity]*handle),
		lookupEnv: b.lookupEnv,
		canonical: b.canonical,
		openFile:  b.openFile,
		openFD:    openFDSource,
		stdin:     b.stdin,
		prompter:  b.prompter,
		logger:    b.logger,
	}
}

func openOSFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func openFDSource(fd int) (io.ReadCloser, error) {
	f, err := openDescriptor(fd)
	if err != nil {
		return nil, err
	}
	return f, nil
}
