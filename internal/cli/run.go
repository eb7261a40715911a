package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gitutils/git-ignore/internal/git"
	"github.com/gitutils/git-ignore/internal/ignore"
	"github.com/gitutils/git-ignore/internal/ui"
)

// TargetKind selects which ignore file an invocation writes to.
type TargetKind int

const (
	// TargetRepository is the .gitignore at the working-tree root.
	TargetRepository TargetKind = iota
	// TargetLocal is the per-checkout .git/info/exclude.
	TargetLocal
	// TargetGlobal is the user's global excludes file.
	TargetGlobal
)

// request is one parsed invocation handed to the orchestrator.
type request struct {
	patterns        []string
	target          TargetKind
	noValidate      bool
	allowDuplicates bool

	// dir is the start directory for git resolution; empty means the
	// process working directory. Tests point it at temp repositories.
	dir string

	// stdout receives the report; diagnostics go through ui.
	stdout io.Writer
}

// run executes one add request end to end: validate, resolve the target
// path, append, report. Every failure is returned as an *exitError after
// its message has been printed.
func run(req request) error {
	if req.stdout == nil {
		req.stdout = os.Stdout
	}

	if !req.noValidate {
		findings := ignore.ValidateAll(req.patterns)
		renderFindings(findings)
		if ignore.HasBlocking(findings) {
			return exitWith(ExitValidation, errors.New("validation failed"))
		}
	}

	targetPath, err := resolveTargetPath(req)
	if err != nil {
		return err
	}

	if req.target == TargetLocal {
		if err := ignore.EnsureExcludeFile(targetPath); err != nil {
			ui.Fail("Error preparing exclude file: %v", err)
			return exitWith(ExitIO, err)
		}
	}

	report, err := ignore.Append(targetPath, req.patterns, req.allowDuplicates)
	if err != nil {
		ui.Fail("Error writing patterns: %v", err)
		return exitWith(ExitIO, err)
	}

	renderReport(req, report)
	return nil
}

// resolveTargetPath maps the requested target kind onto a concrete path,
// translating resolution failures into their exit codes.
func resolveTargetPath(req request) (string, error) {
	if req.target == TargetGlobal {
		path, err := git.GlobalIgnorePath(req.dir)
		if err != nil {
			ui.Fail("Configuration error: %v", err)
			ui.DimMsg("Try 'git config --global core.excludesfile ~/.gitignore_global' to set a global gitignore")
			return "", exitWith(ExitConfiguration, err)
		}
		return path, nil
	}

	ctx, err := git.NewResolver(req.dir).Resolve()
	if err != nil {
		ui.Fail("Git error while determining target file: %v", err)
		return "", exitWith(ExitNotRepository, err)
	}

	if req.target == TargetLocal {
		return ctx.ExcludePath(), nil
	}
	return ctx.GitignorePath(), nil
}

// renderFindings prints validation findings grouped by severity, errors
// first so the reason for a blocked run leads the output.
func renderFindings(findings []ignore.Finding) {
	for _, f := range findings {
		if f.Severity == ignore.SeverityError {
			ui.Fail("%s: %s", f.Pattern, f.Message)
		}
	}
	for _, f := range findings {
		if f.Severity == ignore.SeverityWarning {
			ui.Warn("%s: %s", f.Pattern, f.Message)
		}
	}
	for _, f := range findings {
		if f.Severity == ignore.SeverityInfo {
			ui.Info("%s: %s", f.Pattern, f.Message)
		}
	}
}

// renderReport prints the outcome to stdout in a pipeable plain format.
func renderReport(req request, report *ignore.Report) {
	desc := targetDescription(req.target, report.TargetPath)

	for _, pattern := range report.SkippedDuplicates {
		ui.DimMsg("skipped duplicate: %s", pattern)
	}

	if len(report.Added) == 0 {
		fmt.Fprintf(req.stdout, "No new patterns added to %s (all patterns already exist)\n", desc)
		return
	}

	word := "patterns"
	if len(report.Added) == 1 {
		word = "pattern"
	}
	fmt.Fprintf(req.stdout, "Added %d %s to %s:\n", len(report.Added), word, desc)
	for _, pattern := range report.Added {
		fmt.Fprintf(req.stdout, "  %s\n", pattern)
	}
}

func targetDescription(target TargetKind, path string) string {
	switch target {
	case TargetLocal:
		return fmt.Sprintf("local exclude file (%s)", path)
	case TargetGlobal:
		return fmt.Sprintf("global gitignore (%s)", path)
	default:
		return fmt.Sprintf("repository gitignore (%s)", path)
	}
}
