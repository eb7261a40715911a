package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGlobalConfig points GIT_CONFIG_GLOBAL at a throwaway config file
// holding the given core.excludesFile value.
func writeGlobalConfig(t *testing.T, excludesFile string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitconfig")
	content := "[core]\n\texcludesfile = " + excludesFile + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GIT_CONFIG_GLOBAL", path)
}

// clearGlobalDefaults points every default lookup location at empty
// directories so only the test's own configuration is visible.
func clearGlobalDefaults(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestGlobalIgnorePath_Configured(t *testing.T) {
	requireGit(t)
	clearGlobalDefaults(t)

	// The configured file does not need to exist yet; the store creates it.
	want := filepath.Join(t.TempDir(), "nested", "ignore")
	writeGlobalConfig(t, want)

	got, err := GlobalIgnorePath("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoFileExists(t, got)
}

func TestGlobalIgnorePath_ConfiguredTildeExpansion(t *testing.T) {
	requireGit(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	writeGlobalConfig(t, "~/.gitignore_global")

	got, err := GlobalIgnorePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".gitignore_global"), got)
}

func TestGlobalIgnorePath_XDGFallback(t *testing.T) {
	requireGit(t)
	clearGlobalDefaults(t)

	xdg := os.Getenv("XDG_CONFIG_HOME")
	want := filepath.Join(xdg, "git", "ignore")
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o755))
	require.NoError(t, os.WriteFile(want, []byte("*.swp\n"), 0o644))

	got, err := GlobalIgnorePath("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGlobalIgnorePath_HomeConfigFallback(t *testing.T) {
	requireGit(t)
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".config", "git", "ignore")
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o755))
	require.NoError(t, os.WriteFile(want, []byte(""), 0o644))

	got, err := GlobalIgnorePath("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGlobalIgnorePath_NothingConfigured(t *testing.T) {
	requireGit(t)
	clearGlobalDefaults(t)

	_, err := GlobalIgnorePath("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoGlobalIgnore)
}
