package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/namedlog/core"
	"github.com/philipp01105/namedlog/levels"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by bad arguments
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// NewRootCommand builds the namedlog command tree writing to out and errOut
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "namedlog",
		Short: "Inspect and exercise named logger level rules",
		Long: `namedlog sets up console and syslog sinks, creates a set of sample
loggers and applies regex level rules to them, so rule files can be
tried out before they are deployed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().String("config", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(newDemoCommand(), newMatchCommand())
	return root
}

// Execute runs the command line and returns the process exit code
func Execute(args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	fmt.Fprintf(errOut, "Error: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	var uerr *usageError
	var perr *levels.InvalidPatternError
	switch {
	case errors.As(err, &uerr), errors.As(err, &perr):
		return ExitUsage
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "accepts "),
		strings.HasPrefix(err.Error(), "requires "):
		return ExitUsage
	default:
		return ExitError
	}
}

// parseAssignment parses PATTERN=LEVEL. The last '=' separates the level
// so patterns may contain '='.
func parseAssignment(s string, inverse bool) (levels.Assignment, error) {
	i := strings.LastIndexByte(s, '=')
	if i <= 0 || i == len(s)-1 {
		return levels.Assignment{}, usagef("assignment %q: want PATTERN=LEVEL", s)
	}
	lvl, err := core.ParseLevel(s[i+1:])
	if err != nil {
		return levels.Assignment{}, usagef("assignment %q: %v", s, err)
	}
	return levels.Assignment{Pattern: s[:i], Level: lvl, Inverse: inverse}, nil
}
