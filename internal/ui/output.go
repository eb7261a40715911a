// Package ui provides formatted terminal output for git-ignore.
//
// Diagnostics go to Out (stderr by default) so stdout stays clean for the
// report the orchestrator prints.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Out is the diagnostic output destination.
	Out io.Writer = os.Stderr

	// fancy selects unicode glyphs; plain prefixes when stderr is piped.
	fancy = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

func glyph(tty, pipe string) string {
	if fancy {
		return tty
	}
	return pipe
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Cyan(glyph("→", "info:")), fmt.Sprintf(format, args...))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Green(glyph("✔", "ok:")), fmt.Sprintf(format, args...))
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Yellow(glyph("○", "warning:")), fmt.Sprintf(format, args...))
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Red(glyph("✘", "error:")), fmt.Sprintf(format, args...))
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s\n", Dim(fmt.Sprintf(format, args...)))
}
