// Package git resolves the ignore-file targets of the enclosing repository.
//
// This package handles:
//   - Working-tree root and git-data directory resolution, cached per process
//   - Submodule (.git pointer file) and linked-worktree layouts
//   - Global excludes file lookup (core.excludesFile plus the git defaults)
//
// All git-derived values come from the git binary itself (rev-parse, config)
// rather than from parsing .git indirection files: the pointer-file format
// and the worktree directory structure are git implementation details, and
// rev-parse answers with the canonical absolute paths for every layout.
//
// Example usage:
//
//	ctx, err := git.NewResolver("").Resolve()
//	if err != nil {
//	    // not inside a git working tree
//	}
//	path := ctx.GitignorePath()
package git
