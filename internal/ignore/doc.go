// Package ignore implements the pattern validator and the ignore-file store.
//
// The validator classifies raw patterns into advisory findings (info,
// warning, error) without touching the filesystem; only error findings make
// a pattern non-addable, and the caller decides whether to invoke validation
// at all.
//
// The store appends patterns to a line-oriented ignore file. Existing
// content is preserved byte for byte, duplicates are detected by exact
// trimmed-text match against existing pattern lines (comments and blanks
// never count), and every write stages the complete new content in a
// temporary file committed with a single rename, so a crash or a concurrent
// reader never observes a partially written file.
//
// Example usage:
//
//	report, err := ignore.Append(path, []string{"*.pyc"}, false)
//	if err == nil {
//	    fmt.Println(len(report.Added), "added,", len(report.SkippedDuplicates), "skipped")
//	}
package ignore
