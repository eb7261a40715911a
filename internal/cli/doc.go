// Package cli provides the command-line surface for git-ignore.
//
// This package owns the cobra root command, the request orchestrator that
// wires the pattern validator, the git context resolver, and the ignore-file
// store together, and the mapping from error kinds to process exit codes:
//
//   - 0: success, including "no new patterns" no-ops
//   - 1: an error-severity validation finding blocked the add
//   - 2: git repository resolution failed
//   - 3: no global gitignore file configured
//   - 4: filesystem I/O failure
//   - 255: unexpected failure
//
// Exit code 130 (interrupt) is handled by the main package.
//
// Example usage:
//
//	os.Exit(cli.Execute(os.Args[1:]))
package cli
