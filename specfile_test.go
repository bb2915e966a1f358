// FILE: lixenwraith/passarg/specfile_test.go
package passarg_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/passarg"
)

func specNames(specs []passarg.NamedSpec) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	return names
}

// TestLoadSpecFile tests loading ordered spec tables from TOML and YAML
func TestLoadSpecFile(t *testing.T) {
	tmpDir := t.TempDir()
	pwFile := writeFile(t, tmpDir, "pw.txt", "line-one\nline-two\n")

	t.Run("TOMLDocumentOrder", func(t *testing.T) {
		content := fmt.Sprintf(`
# later keys sort before earlier ones alphabetically
zeta  = "file:%[1]s"
alpha = "file:%[1]s"
mid   = "pass:literal"
`, pwFile)
		path := writeFile(t, tmpDir, "order.toml", content)

		specs, err := passarg.LoadSpecFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, specNames(specs))
		assert.Equal(t, passarg.KindFile, specs[0].Spec.Kind)
		assert.Equal(t, passarg.KindLiteral, specs[2].Spec.Kind)

		r := passarg.NewReader()
		defer r.Close()
		secrets, err := r.ResolveNamed(specs)
		require.NoError(t, err)
		require.Len(t, secrets, 3)
		assert.Equal(t, "line-one", secrets[0].Secret.Reveal())
		assert.Equal(t, "line-two", secrets[1].Secret.Reveal())
		assert.Equal(t, "literal", secrets[2].Secret.Reveal())
	})

	t.Run("YAMLDocumentOrder", func(t *testing.T) {
		content := fmt.Sprintf("pass_out: file:%[1]s\npass_in: \"file:%[1]s\"\nprompted: prompt:PIN\n", pwFile)
		path := writeFile(t, tmpDir, "order.yaml", content)

		specs, err := passarg.LoadSpecFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"pass_out", "pass_in", "prompted"}, specNames(specs))
		assert.Equal(t, "PIN", specs[2].Spec.Prompt)
	})

	t.Run("YMLExtension", func(t *testing.T) {
		path := writeFile(t, tmpDir, "short.yml", "k: stdin\n")
		specs, err := passarg.LoadSpecFile(path)
		require.NoError(t, err)
		require.Len(t, specs, 1)
		assert.Equal(t, passarg.KindStdin, specs[0].Spec.Kind)
	})

	t.Run("EmptyFiles", func(t *testing.T) {
		for _, name := range []string{"empty.toml", "empty.yaml"} {
			specs, err := passarg.LoadSpecFile(writeFile(t, tmpDir, name, ""))
			require.NoError(t, err, name)
			assert.Empty(t, specs, name)
		}
	})

	t.Run("InvalidEntries", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{"bad-spec.toml", `key = "bogus:x"`},
			{"not-string.toml", `key = 42`},
			{"nested.toml", "[section]\nkey = \"pass:x\"\n"},
			{"bad-spec.yaml", "key: bogus\n"},
			{"not-string.yaml", "key: 42\n"},
			{"nested.yaml", "key:\n  inner: pass:x\n"},
			{"list.yaml", "- pass:x\n"},
			{"duplicate.yaml", "key: pass:a\nkey: pass:b\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := passarg.LoadSpecFile(writeFile(t, tmpDir, tt.name, tt.content))
				require.Error(t, err)
				assert.ErrorIs(t, err, passarg.ErrInvalidSpec)
			})
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := passarg.LoadSpecFile(writeFile(t, tmpDir, "broken.toml", "key = \"unterminated"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, passarg.ErrInvalidSpec)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := passarg.LoadSpecFile(filepath.Join(tmpDir, "absent.toml"))
		assert.ErrorIs(t, err, passarg.ErrSpecFileNotFound)
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		_, err := passarg.LoadSpecFile(writeFile(t, tmpDir, "specs.ini", "a=pass:b"))
		assert.Error(t, err)
	})

	t.Run("ResolveNamedStopsOnError", func(t *testing.T) {
		specs := []passarg.NamedSpec{
			{Name: "ok", Spec: passarg.MustParse("pass:a")},
			{Name: "missing", Spec: passarg.MustParse("env:PASSARG_NOT_SET_ANYWHERE")},
		}
		r := passarg.NewBuilder().WithEnv(nil).Build()
		_, err := r.ResolveNamed(specs)
		require.ErrorIs(t, err, passarg.ErrEnvVarNotFound)
		assert.Contains(t, err.Error(), "missing")
	})
}
