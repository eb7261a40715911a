package ignore

import "strings"

// Severity classifies a validation finding. Only Error blocks an add.
type Severity int

const (
	// SeverityInfo is advice the user can ignore.
	SeverityInfo Severity = iota
	// SeverityWarning flags a pattern that is probably broader than intended.
	SeverityWarning
	// SeverityError flags a pattern that would corrupt the ignore file.
	SeverityError
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Finding is a single advisory result from validating one pattern.
type Finding struct {
	Pattern  string
	Severity Severity
	Message  string
}

// broadPatterns match everything (or the whole tree root) and are almost
// never what the user meant.
var broadPatterns = map[string]bool{
	"*":  true,
	"**": true,
	"/":  true,
}

// guardedPatterns would hide files most projects want tracked.
var guardedPatterns = map[string]bool{
	".git":       true,
	".gitignore": true,
	"README*":    true,
	"LICENSE*":   true,
}

// Validate classifies a raw pattern into zero or more findings. It never
// rewrites the pattern; callers decide what to do with the findings.
func Validate(pattern string) []Finding {
	var findings []Finding

	trimmed := strings.TrimSpace(pattern)

	if trimmed == "" {
		return []Finding{{
			Pattern:  pattern,
			Severity: SeverityError,
			Message:  "pattern is empty",
		}}
	}

	if strings.ContainsAny(pattern, "\n\r") {
		findings = append(findings, Finding{
			Pattern:  pattern,
			Severity: SeverityError,
			Message:  "pattern contains newline characters which would corrupt the ignore file",
		})
	}

	if broadPatterns[trimmed] {
		findings = append(findings, Finding{
			Pattern:  trimmed,
			Severity: SeverityWarning,
			Message:  "pattern is very broad and may ignore more than intended",
		})
	}

	if strings.Count(trimmed, "**") > 1 {
		findings = append(findings, Finding{
			Pattern:  trimmed,
			Severity: SeverityWarning,
			Message:  "pattern has multiple '**' which may not match as expected",
		})
	}

	if guardedPatterns[trimmed] {
		findings = append(findings, Finding{
			Pattern:  trimmed,
			Severity: SeverityWarning,
			Message:  "pattern might ignore important project files",
		})
	}

	if strings.HasPrefix(trimmed, "./") {
		findings = append(findings, Finding{
			Pattern:  trimmed,
			Severity: SeverityInfo,
			Message:  "leading './' is redundant and can be dropped",
		})
	}

	if len(trimmed) > 2 && strings.HasPrefix(trimmed, "/") && strings.HasSuffix(trimmed, "/") {
		findings = append(findings, Finding{
			Pattern:  trimmed,
			Severity: SeverityInfo,
			Message:  "pattern has leading and trailing slashes - might be more restrictive than intended",
		})
	}

	return findings
}

// ValidateAll validates every pattern in order and concatenates the findings.
func ValidateAll(patterns []string) []Finding {
	var findings []Finding
	for _, p := range patterns {
		findings = append(findings, Validate(p)...)
	}
	return findings
}

// HasBlocking reports whether any finding is an Error.
func HasBlocking(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
