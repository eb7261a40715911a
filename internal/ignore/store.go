package ignore

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// renameFile is the commit step of the atomic write. Tests swap it to
// simulate a failure between staging and replace.
var renameFile = os.Rename

// Report describes the outcome of one Append call.
type Report struct {
	// Added holds the patterns written, in input order.
	Added []string
	// SkippedDuplicates holds the patterns dropped as duplicates, in input order.
	SkippedDuplicates []string
	// TargetPath is the file the report refers to.
	TargetPath string
	// Created is true when the target file did not exist before the call.
	Created bool
}

// Append adds patterns to the ignore file at targetPath, skipping exact
// duplicates of existing pattern lines unless allowDuplicates is set.
//
// The existing file content is preserved verbatim; new patterns are appended
// one per line after the existing content, which gets a terminating newline
// first if it lacks one. The write stages the full new content in a
// temporary file beside the target and commits it with a single rename, so
// no observer ever sees a partially written file and any failure leaves the
// target untouched.
func Append(targetPath string, patterns []string, allowDuplicates bool) (*Report, error) {
	report := &Report{TargetPath: targetPath}

	existing, err := os.ReadFile(targetPath)
	missing := false
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", targetPath, err)
		}
		missing = true
	}

	seen := existingPatterns(existing)

	for _, raw := range patterns {
		pattern := sanitize(raw)
		if pattern == "" {
			continue
		}
		if !allowDuplicates && seen[pattern] {
			report.SkippedDuplicates = append(report.SkippedDuplicates, pattern)
			continue
		}
		seen[pattern] = true
		report.Added = append(report.Added, pattern)
	}

	if len(report.Added) == 0 {
		return report, nil
	}

	var content strings.Builder
	content.Write(existing)
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		content.WriteByte('\n')
	}
	for _, pattern := range report.Added {
		content.WriteString(pattern)
		content.WriteByte('\n')
	}

	if err := writeFileAtomic(targetPath, []byte(content.String()), fileMode(targetPath)); err != nil {
		return nil, err
	}

	report.Created = missing
	return report, nil
}

// excludeTemplate is the stock comment block git seeds info/exclude with.
const excludeTemplate = `# git ls-files --others --exclude-from=.git/info/exclude
# Lines that start with '#' are comments.
# For a project mostly in C, the following would be a good set of
# exclude patterns (uncomment them if you want to use them):
# *.[oa]
# *~
`

// EnsureExcludeFile creates a missing info/exclude file with git's stock
// comment template. An existing file is left alone.
func EnsureExcludeFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return writeFileAtomic(path, []byte(excludeTemplate), 0o644)
}

// existingPatterns builds the duplicate-detection set: trimmed non-blank
// lines that are not comments. Comments and blanks stay in the file but
// never count as patterns.
func existingPatterns(content []byte) map[string]bool {
	patterns := make(map[string]bool)
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns[trimmed] = true
	}
	return patterns
}

// sanitize trims a pattern and strips line breaks that would corrupt the
// line-oriented format. Validation reports such patterns as errors; this is
// the last line of defense when validation is skipped.
func sanitize(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "\n", "")
	pattern = strings.ReplaceAll(pattern, "\r", "")
	return strings.TrimSpace(pattern)
}

// fileMode returns the target's current mode, or 0644 for a new file.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// writeFileAtomic stages data in a temporary file next to path and renames
// it into place. The rename is the only step other observers can see.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("staging write for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(mode)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		slog.Debug("committing staged write", "target", path, "staged", tmpPath)
		err = renameFile(tmpPath, path)
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
