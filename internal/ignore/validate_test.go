package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CleanPatterns(t *testing.T) {
	for _, pattern := range []string{"*.pyc", "__pycache__/", "build/", "node_modules", "!keep.log"} {
		t.Run(pattern, func(t *testing.T) {
			assert.Empty(t, Validate(pattern))
		})
	}
}

func TestValidate_EmptyPattern(t *testing.T) {
	for _, pattern := range []string{"", "   ", "\t"} {
		findings := Validate(pattern)
		require.Len(t, findings, 1)
		assert.Equal(t, SeverityError, findings[0].Severity)
	}
}

func TestValidate_EmbeddedNewline(t *testing.T) {
	for _, pattern := range []string{"bad\npattern", "bad\rpattern", "trailing\n"} {
		t.Run(pattern, func(t *testing.T) {
			findings := Validate(pattern)
			require.NotEmpty(t, findings)
			assert.Equal(t, SeverityError, findings[0].Severity)
			assert.Contains(t, findings[0].Message, "newline")
		})
	}
}

func TestValidate_BroadPatterns(t *testing.T) {
	for _, pattern := range []string{"*", "**", "/"} {
		t.Run(pattern, func(t *testing.T) {
			findings := Validate(pattern)
			require.Len(t, findings, 1)
			assert.Equal(t, SeverityWarning, findings[0].Severity)
		})
	}
}

func TestValidate_RepeatedDoubleStar(t *testing.T) {
	findings := Validate("a/**/b/**/c")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)

	// A single ** is normal gitignore syntax.
	assert.Empty(t, Validate("docs/**/*.md"))
}

func TestValidate_GuardedPatterns(t *testing.T) {
	findings := Validate(".gitignore")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "important")
}

func TestValidate_RedundantDotSlash(t *testing.T) {
	findings := Validate("./build/")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityInfo, findings[0].Severity)
}

func TestValidate_LeadingAndTrailingSlash(t *testing.T) {
	findings := Validate("/vendor/")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityInfo, findings[0].Severity)
}

func TestValidateAll_PreservesOrder(t *testing.T) {
	findings := ValidateAll([]string{"*", "ok.txt", "./x"})
	require.Len(t, findings, 2)
	assert.Equal(t, "*", findings[0].Pattern)
	assert.Equal(t, "./x", findings[1].Pattern)
}

func TestHasBlocking(t *testing.T) {
	assert.False(t, HasBlocking(nil))
	assert.False(t, HasBlocking(ValidateAll([]string{"*", "./x"})))
	assert.True(t, HasBlocking(ValidateAll([]string{"ok", "bad\npattern"})))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
