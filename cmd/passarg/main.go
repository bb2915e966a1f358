// Package main provides the passarg CLI, a thin shell over the passarg
// package for scripts that need a password argument resolved.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/passarg"
)

// Version is the current passarg CLI version
var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "passarg",
		Short: "Resolve OpenSSL-style password arguments",
		Long: `passarg resolves password arguments (pass:, env:, file:, fd:, stdin, prompt[:text]).

Arguments naming the same file, descriptor or stdin consume successive lines,
in the order they are given on the command line.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log source lifecycle events to stderr")

	newReader := func(cmd *cobra.Command) *passarg.Reader {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if verbose {
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		return passarg.NewBuilder().
			WithStdin(cmd.InOrStdin()).
			WithLogger(logger).
			Build()
	}

	rootCmd.AddCommand(newReadCmd(newReader), newParseCmd(), newFileCmd(newReader))
	return rootCmd
}

func newReadCmd(newReader func(*cobra.Command) *passarg.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "read SPEC...",
		Short: "Resolve each SPEC in order and print one password per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newReader(cmd)
			defer r.Close()

			passwords, err := r.ReadPassArgs(args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range passwords {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse SPEC...",
		Short: "Check SPEC syntax without reading any source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				spec, err := passarg.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", spec.Kind, spec)
			}
			return nil
		},
	}
}

func newFileCmd(newReader func(*cobra.Command) *passarg.Reader) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "file [PATH]",
		Short: "Resolve a TOML or YAML spec file in document order",
		Long: `Resolve every name = "spec" entry of a spec file and print name=password lines.

Without PATH the file is discovered: $<NAME>_PASSFILE, then <NAME>.toml|.yaml|.yml
in the current directory and the XDG config directories.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				found, err := passarg.DiscoverSpecFile(passarg.DefaultDiscoveryOptions(appName))
				if err != nil {
					return err
				}
				path = found
			}

			specs, err := passarg.LoadSpecFile(path)
			if err != nil {
				return err
			}

			r := newReader(cmd)
			defer r.Close()

			secrets, err := r.ResolveNamed(specs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range secrets {
				fmt.Fprintf(out, "%s=%s\n", s.Name, s.Secret.Reveal())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&appName, "name", "passarg", "Base name used for spec file discovery")
	return cmd
}
