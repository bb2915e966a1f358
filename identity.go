// FILE: lixenwraith/passarg/identity.go
package passarg

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// identity keys one shared file-like source within a Reader.
type identity struct {
	kind Kind
	path string // KindFile, canonical
	fd   int    // KindDescriptor
}

var stdinIdentity = identity{kind: KindStdin}

func (id identity) String() string {
	switch id.kind {
	case KindFile:
		return "file:" + id.path
	case KindDescriptor:
		return "fd:" + strconv.Itoa(id.fd)
	default:
		return id.kind.String()
	}
}

// canonicalPath makes path absolute and resolves symlinks, so that
// "./pw.txt", "/abs/pw.txt" and a link to it share one identity.
// Case-insensitive filesystems are not folded.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", ErrIO, path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", ErrIO, path, err)
	}
	return resolved, nil
}
