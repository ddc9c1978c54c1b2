//go:build cgo
// +build cgo

// smtcheck runs an SMT-LIB2 script through the Z3 binding and reports the
// satisfiability verdict. Exit code 0 means sat, 1 unsat, 2 unknown or
// failure.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	z3 "github.com/smtkit/smtlib-go/z3"
)

var (
	showModel bool
	verbose   bool
	timeoutMS uint
	options   []string
)

func newRootCmd(exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smtcheck [flags] FILE",
		Short: "Check satisfiability of an SMT-LIB2 script",
		Long: `smtcheck parses an SMT-LIB2 script, asserts its formulas into a fresh
Z3 solver, and runs check-sat. On sat, --model prints the model Z3 built.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], exitCode)
		},
	}
	cmd.Flags().BoolVarP(&showModel, "model", "m", false, "print the model when the script is sat")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().UintVar(&timeoutMS, "timeout", 0, "solver timeout in milliseconds (0 = none)")
	cmd.Flags().StringArrayVar(&options, "option", nil, "solver option as key=value (repeatable)")
	return cmd
}

func runCheck(cmd *cobra.Command, path string, exitCode *int) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if timeoutMS > 0 {
		z3.SetGlobalParam("timeout", fmt.Sprintf("%d", timeoutMS))
		logger.Debug("solver timeout set", "ms", timeoutMS)
	}

	cfg := z3.NewConfig()
	ctx := z3.NewContext(cfg)
	cfg.Close()
	defer ctx.Close()

	solver := ctx.NewSolver()
	defer solver.Close()

	for _, opt := range options {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return fmt.Errorf("malformed --option %q, want key=value", opt)
		}
		if err := solver.SetOption(key, value); err != nil {
			return fmt.Errorf("set option %s: %w", key, err)
		}
		logger.Debug("solver option set", "key", key, "value", value)
	}

	logger.Debug("loading script", "path", path)
	if err := solver.AssertSMTLIB2File(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	res, err := solver.Check()
	if err != nil && res == z3.Unknown {
		logger.Debug("solver returned unknown", "reason", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res)
	switch res {
	case z3.Sat:
		*exitCode = 0
		if showModel {
			m := solver.Model()
			if m == nil {
				return fmt.Errorf("sat but no model available")
			}
			defer m.Close()
			fmt.Fprint(cmd.OutOrStdout(), m.String())
		}
	case z3.Unsat:
		*exitCode = 1
	default:
		*exitCode = 2
	}
	return nil
}

func main() {
	exitCode := 0
	cmd := newRootCmd(&exitCode)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smtcheck:", err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}
