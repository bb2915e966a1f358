// FILE: lixenwraith/passarg/spec.go
package passarg

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrompt is the label shown for a bare "prompt" specification.
const DefaultPrompt = "Password: "

// Kind identifies the source form of a Spec. The zero Kind is invalid, so a
// zero Spec resolves to an error rather than an empty literal.
type Kind int

const (
	KindLiteral    Kind = iota + 1 // pass:PASSWORD
	KindEnv                        // env:VAR
	KindFile                       // file:PATH
	KindDescriptor                 // fd:NUMBER
	KindStdin                      // stdin
	KindPrompt                     // prompt[:TEXT]
)

var kindNames = [...]string{
	KindLiteral:    "pass",
	KindEnv:        "env",
	KindFile:       "file",
	KindDescriptor: "fd",
	KindStdin:      "stdin",
	KindPrompt:     "prompt",
}

// String returns the specification keyword for the kind.
func (k Kind) String() string {
	if k < KindLiteral || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Spec is a parsed password specification. Only the payload field matching
// Kind is meaningful.
type Spec struct {
	Kind Kind

	Text   string // KindLiteral
	Name   string // KindEnv
	Path   string // KindFile
	FD     int    // KindDescriptor
	Prompt string // KindPrompt, empty means DefaultPrompt
}

// Label returns the prompt text for a KindPrompt spec.
func (s Spec) Label() string {
	if s.Prompt == "" {
		return DefaultPrompt
	}
	return s.Prompt
}

// String renders the spec back to its argument form. Literal passwords are masked.
func (s Spec) String() string {
	switch s.Kind {
	case KindLiteral:
		return "pass:***"
	case KindEnv:
		return "env:" + s.Name
	case KindFile:
		return "file:" + s.Path
	case KindDescriptor:
		return "fd:" + strconv.Itoa(s.FD)
	case KindStdin:
		return "stdin"
	case KindPrompt:
		if s.Prompt == "" {
			return "prompt"
		}
		return "prompt:" + s.Prompt
	default:
		return s.Kind.String()
	}
}

// Parse converts a password argument into a Spec. It has no side effects:
// nothing is opened, looked up or read.
func Parse(arg string) (Spec, error) {
	keyword, value, hasValue := strings.Cut(arg, ":")

	switch keyword {
	case "pass", "env", "file", "fd":
		if !hasValue || value == "" {
			return Spec{}, fmt.Errorf("%w: %q requires an argument after %q", ErrInvalidSpec, arg, keyword+":")
		}
	}

	switch keyword {
	case "pass":
		return Spec{Kind: KindLiteral, Text: value}, nil

	case "env":
		return Spec{Kind: KindEnv, Name: value}, nil

	case "file":
		return Spec{Kind: KindFile, Path: value}, nil

	case "fd":
		// ParseUint rejects signs, so "-1" and "+3" are malformed rather than negative
		n, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: invalid descriptor number %q: %w", ErrInvalidSpec, value, err)
		}
		if !DescriptorsSupported() {
			return Spec{}, fmt.Errorf("%w: fd:%d on %s", ErrUnsupportedOnPlatform, n, platform)
		}
		return Spec{Kind: KindDescriptor, FD: int(n)}, nil

	case "stdin":
		if hasValue {
			return Spec{}, fmt.Errorf("%w: %q takes no argument", ErrInvalidSpec, arg)
		}
		return Spec{Kind: KindStdin}, nil

	case "prompt":
		return Spec{Kind: KindPrompt, Prompt: value}, nil
	}

	return Spec{}, fmt.Errorf("%w: invalid type %q", ErrInvalidSpec, keyword)
}

// MustParse is like Parse but panics on error. Intended for constant arguments.
func MustParse(arg string) Spec {
	s, err := Parse(arg)
	if err != nil {
		panic(fmt.Sprintf("passarg: %v", err))
	}
	return s
}
