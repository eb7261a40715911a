package ignore_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitutils/git-ignore/internal/ignore"
)

func ExampleAppend() {
	dir, _ := os.MkdirTemp("", "example")
	defer os.RemoveAll(dir)
	target := filepath.Join(dir, ".gitignore")

	report, _ := ignore.Append(target, []string{"*.pyc", "*.pyc", "build/"}, false)
	fmt.Println(len(report.Added), "added,", len(report.SkippedDuplicates), "skipped")
	// Output: 2 added, 1 skipped
}

func ExampleValidate() {
	for _, f := range ignore.Validate("./build/") {
		fmt.Printf("%s: %s\n", f.Severity, f.Message)
	}
	// Output: info: leading './' is redundant and can be dropped
}
