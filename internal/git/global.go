package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoGlobalIgnore is returned when no global excludes file is configured
// and none of the default locations hold one.
var ErrNoGlobalIgnore = errors.New("no global gitignore file configured")

// GlobalIgnorePath returns the path of the user's global excludes file.
//
// A configured core.excludesFile always wins, even when the file does not
// exist yet (the store creates it on first use). With nothing configured,
// the git default locations $XDG_CONFIG_HOME/git/ignore and
// ~/.config/git/ignore are consulted, but only an already-existing file is
// used: inventing a brand-new default location is a configuration decision
// the user has to make, not one this tool makes for them.
func GlobalIgnorePath(startDir string) (string, error) {
	// --path makes git expand ~ and relative values itself.
	path, err := runGit(startDir, "config", "--path", "--get", "core.excludesFile")
	if err == nil && path != "" {
		if !filepath.IsAbs(path) {
			path, err = filepath.Abs(path)
			if err != nil {
				return "", fmt.Errorf("resolving core.excludesFile: %w", err)
			}
		}
		return path, nil
	}

	for _, candidate := range defaultGlobalIgnorePaths() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: set core.excludesfile or create ~/.config/git/ignore", ErrNoGlobalIgnore)
}

func defaultGlobalIgnorePaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "git", "ignore"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "git", "ignore"))
	}
	return paths
}
