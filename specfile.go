// FILE: lixenwraith/passarg/specfile.go
package passarg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// NamedSpec is one entry of a spec file.
type NamedSpec struct {
	Name string
	Spec Spec
}

// NamedSecret is the resolved form of a NamedSpec.
type NamedSecret struct {
	Name   string
	Secret Secret
}

// LoadSpecFile reads a flat table of name to specification strings from a
// TOML (.toml) or YAML (.yaml, .yml) file:
//
//	pass_in  = "file:pass.txt"
//	pass_out = "file:pass.txt"
//
// Entries are returned in document order, which is also the order in which
// ResolveNamed consumes shared sources. Nothing is resolved here.
func LoadSpecFile(path string) ([]NamedSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSpecFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: read spec file '%s': %w", ErrIO, path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return parseTOMLSpecs(path, data)
	case ".yaml", ".yml":
		return parseYAMLSpecs(path, data)
	default:
		return nil, fmt.Errorf("unsupported spec file extension %q for '%s'", ext, path)
	}
}

func parseTOMLSpecs(path string, data []byte) ([]NamedSpec, error) {
	raw := make(map[string]any)
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML spec file '%s': %w", path, err)
	}

	var specs []NamedSpec
	for _, key := range md.Keys() {
		if len(key) != 1 {
			// Children of a table already rejected below
			continue
		}
		name := key[0]
		arg, ok := raw[name].(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %q in '%s' must be a string, got %T", ErrInvalidSpec, name, path, raw[name])
		}
		ns, err := namedSpec(path, name, arg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ns)
	}
	return specs, nil
}

func parseYAMLSpecs(path string, data []byte) ([]NamedSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML spec file '%s': %w", path, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: '%s' must contain a mapping of names to specifications", ErrInvalidSpec, path)
	}

	seen := make(map[string]bool, len(root.Content)/2)
	specs := make([]NamedSpec, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		name := keyNode.Value
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate key %q in '%s'", ErrInvalidSpec, name, path)
		}
		seen[name] = true

		if valNode.Kind != yaml.ScalarNode || valNode.Tag != "!!str" {
			return nil, fmt.Errorf("%w: key %q in '%s' must be a string (line %d)", ErrInvalidSpec, name, path, valNode.Line)
		}
		ns, err := namedSpec(path, name, valNode.Value)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ns)
	}
	return specs, nil
}

func namedSpec(path, name, arg string) (NamedSpec, error) {
	spec, err := Parse(arg)
	if err != nil {
		return NamedSpec{}, fmt.Errorf("key %q in '%s': %w", name, path, err)
	}
	return NamedSpec{Name: name, Spec: spec}, nil
}

// ResolveNamed resolves specs in slice order, stopping at the first failure.
func (r *Reader) ResolveNamed(specs []NamedSpec) ([]NamedSecret, error) {
	out := make([]NamedSecret, 0, len(specs))
	for _, ns := range specs {
		pass, err := r.Resolve(ns.Spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ns.Name, err)
		}
		out = append(out, NamedSecret{Name: ns.Name, Secret: Secret(pass)})
	}
	return out, nil
}
