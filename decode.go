// FILE: lixenwraith/passarg/decode.go
package passarg

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var secretType = reflect.TypeOf(Secret(""))

// DecodeHook returns a mapstructure hook that resolves string input into
// Secret and *Secret targets through r. Each conversion consumes the source
// exactly like a ReadPassArg call. mapstructure keeps visiting fields after a
// hook error, so later conversions still consume lines; Decode stops at the
// first failure instead.
func DecodeHook(r *Reader) mapstructure.DecodeHookFunc {
	return secretHook(r)
}

func secretHook(r *Reader) func(reflect.Type, reflect.Type, any) (any, error) {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != secretType {
			return data, nil
		}

		arg := reflect.ValueOf(data).String()
		pass, err := r.ReadPassArg(arg)
		if err != nil {
			return nil, err
		}
		s := Secret(pass)
		if isPtr {
			return &s, nil
		}
		return s, nil
	}
}

// Decode fills target from a map of specification strings, resolving every
// Secret field through the Reader. Fields are visited in declaration order,
// which fixes the order in which shared sources hand out lines. A nested
// struct field is visited depth-first at its position; a ",squash" embedded
// struct is visited after all of the outer struct's own fields. Plain string
// fields are copied without resolution.
//
// Resolution stops at the first failing field: no later field reads from any
// source, so shared sources keep the position the failure left them at.
func (r *Reader) Decode(input map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	// mapstructure flattens hook errors to strings and carries on with the
	// remaining fields; keep the first error and refuse every later conversion
	var resolveErr error
	hook := secretHook(r)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "toml",
		DecodeHook: func(f reflect.Type, t reflect.Type, data any) (any, error) {
			if resolveErr != nil {
				return nil, resolveErr
			}
			v, err := hook(f, t, data)
			if err != nil {
				resolveErr = err
			}
			return v, err
		},
		ZeroFields: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		if resolveErr != nil {
			return fmt.Errorf("decode failed: %w", resolveErr)
		}
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}
