package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitutils/git-ignore/internal/ui"
	"github.com/gitutils/git-ignore/pkg/version"
)

// Process exit codes. The orchestrator classifies every failure into one of
// these; anything it cannot classify comes out as ExitUnexpected.
const (
	ExitOK            = 0
	ExitValidation    = 1
	ExitNotRepository = 2
	ExitConfiguration = 3
	ExitIO            = 4
	ExitInterrupted   = 130
	ExitUnexpected    = 255
)

// exitError carries the exit code chosen for a failure. The user-facing
// message has already been printed by the time it is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

func exitWith(code int, err error) *exitError {
	return &exitError{code: code, err: err}
}

// Execute runs the git-ignore command with the given arguments and returns
// the process exit code.
func Execute(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			ui.Fail("Unexpected error: %v", r)
			code = ExitUnexpected
		}
	}()

	cmd := NewRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var xerr *exitError
	if errors.As(err, &xerr) {
		return xerr.code
	}

	// Flag and usage errors from cobra; errors are silenced on the command
	// so the messages come out through the ui layer like everything else.
	ui.Fail("%v", err)
	ui.DimMsg("Run 'git-ignore --help' for usage")
	return ExitUnexpected
}

// NewRootCmd creates the root command for the git-ignore CLI.
func NewRootCmd() *cobra.Command {
	var (
		local           bool
		global          bool
		noValidate      bool
		allowDuplicates bool
		verbose         bool
	)

	cmd := &cobra.Command{
		Use:   "git-ignore PATTERN...",
		Short: "Add patterns to git ignore files",
		Long: `git-ignore appends patterns to one of git's ignore files, skipping
patterns that are already present and flagging problematic ones before
they land in the file.

By default patterns go to the repository .gitignore. Use --local for the
per-checkout .git/info/exclude, or --global for your global ignore file.`,
		Example: `  git-ignore '*.pyc' '__pycache__/'   # add to .gitignore
  git-ignore --local build/           # add to .git/info/exclude
  git-ignore --global '*.log'         # add to global gitignore`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			} else {
				slog.SetLogLoggerLevel(slog.LevelWarn)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := TargetRepository
			if local {
				target = TargetLocal
			}
			if global {
				target = TargetGlobal
			}

			return run(request{
				patterns:        args,
				target:          target,
				noValidate:      noValidate,
				allowDuplicates: allowDuplicates,
				stdout:          cmd.OutOrStdout(),
			})
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")
	cmd.SetOut(os.Stdout)

	cmd.Flags().BoolVarP(&local, "local", "l", false, "add patterns to .git/info/exclude instead of .gitignore")
	cmd.Flags().BoolVarP(&global, "global", "g", false, "add patterns to the global gitignore file")
	cmd.MarkFlagsMutuallyExclusive("local", "global")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip pattern validation")
	cmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "allow duplicate patterns to be added")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}
