// File: lixenwraith/passarg/doc.go

// Package passarg implements OpenSSL-style password argument handling for
// command-line tools.
//
// Quick Start:
//
//	r := passarg.NewReader()
//	defer r.Close()
//
//	passIn, err := r.ReadPassArg(*passInFlag)   // read first
//	if err != nil {
//	    log.Fatal(err)
//	}
//	passOut, err := r.ReadPassArg(*passOutFlag) // read second
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With --pass-in file:dec-pass.txt --pass-out stdin the program above reads
// the input password from dec-pass.txt and the output password from
// standard input.
//
// Argument Syntax (OpenSSL compatible, see openssl-passphrase-options(1)):
//
//	pass:PASSWORD  the password is PASSWORD; visible to ps, use with care
//	env:VAR        the password is the value of environment variable VAR
//	file:PATH      the next unread line of PATH (regular file, device or named pipe)
//	fd:NUMBER      the next unread line of file descriptor NUMBER (not on Windows)
//	stdin          the next unread line of standard input
//
// Extensions:
//
//	prompt         prompt on the terminal with "Password: "
//	prompt:TEXT    prompt on the terminal with TEXT
//
// Lines end at "\n"; a preceding "\r" is dropped and a final line without a
// newline is still returned.
//
// Shared Sources:
// Arguments naming the same file (after making the path absolute and
// resolving symlinks), the same descriptor number, or stdin share one
// position within a Reader. If --pass-in and --pass-out both name
// file:pass.txt, the first ReadPassArg call receives line 1 and the second
// receives line 2. The call order is therefore part of a tool's interface and
// should be documented, as OpenSSL documents input-password-first.
// Separate Readers do not share positions.
//
// Thread Safety:
// A Reader is meant for a single goroutine. Callers sharing one must
// serialize access themselves.
package passarg
