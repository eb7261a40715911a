package git

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotRepository is returned when no enclosing git working tree can be
// found from the start directory upward.
var ErrNotRepository = errors.New("not a git repository")

// Context holds the resolved paths of the enclosing repository.
type Context struct {
	// WorkTree is the absolute working-tree root.
	WorkTree string
	// GitDir is the absolute git-data directory. For submodules and
	// worktrees this is not a child of WorkTree.
	GitDir string
}

// GitignorePath returns the repository .gitignore path.
func (c Context) GitignorePath() string {
	return filepath.Join(c.WorkTree, ".gitignore")
}

// ExcludePath returns the per-checkout exclude file path.
func (c Context) ExcludePath() string {
	return filepath.Join(c.GitDir, "info", "exclude")
}

// Resolver resolves the git Context for a start directory, caching the
// result for the lifetime of the process. Repeated Resolve calls never
// re-invoke git.
type Resolver struct {
	dir  string
	once sync.Once
	ctx  Context
	err  error
}

// NewResolver returns a Resolver rooted at startDir. An empty startDir
// means the current working directory.
func NewResolver(startDir string) *Resolver {
	return &Resolver{dir: startDir}
}

// Resolve returns the git Context for the resolver's start directory, or
// ErrNotRepository when no enclosing working tree exists.
func (r *Resolver) Resolve() (Context, error) {
	r.once.Do(func() {
		gitDir, err := runGit(r.dir, "rev-parse", "--absolute-git-dir")
		if err != nil {
			r.err = err
			return
		}

		workTree, err := runGit(r.dir, "rev-parse", "--show-toplevel")
		if err != nil {
			r.err = err
			return
		}

		gitDir, err = validatePath(gitDir)
		if err != nil {
			r.err = err
			return
		}
		workTree, err = validatePath(workTree)
		if err != nil {
			r.err = err
			return
		}

		r.ctx = Context{WorkTree: workTree, GitDir: gitDir}
	})
	return r.ctx, r.err
}

// runGit executes git in dir and returns trimmed stdout. A non-zero exit is
// reported as ErrNotRepository carrying git's stderr, since every query this
// package issues fails exactly when there is no enclosing repository (or no
// working tree, as in a bare repo).
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stderr strings.Builder
	cmd.Stderr = &stderr

	slog.Debug("running git", "dir", dir, "args", args)
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("git not found in PATH: %w", err)
		}
		return "", fmt.Errorf("%w (dir: %s): %s", ErrNotRepository, displayDir(dir), strings.TrimSpace(stderr.String()))
	}

	result := strings.TrimSpace(string(out))
	if result == "" {
		return "", fmt.Errorf("git %s returned empty output", strings.Join(args, " "))
	}
	return result, nil
}

// validatePath checks that git handed back an absolute path that exists,
// resolving symlinks so downstream comparisons are stable.
func validatePath(path string) (string, error) {
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("git returned non-absolute path: %s", path)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("invalid path returned by git: %s: %w", path, err)
	}
	return resolved, nil
}

func displayDir(dir string) string {
	if dir != "" {
		return dir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
