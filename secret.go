// FILE: lixenwraith/passarg/secret.go
package passarg

import "log/slog"

const redacted = "[REDACTED]"

// Secret is a resolved password that does not print itself.
// fmt verbs and slog attributes show a placeholder; Reveal returns the value.
type Secret string

// Reveal returns the password.
func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return "passarg.Secret(" + redacted + ")" }

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value { return slog.StringValue(redacted) }
