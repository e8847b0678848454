package format

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidPlaceholders lists all supported placeholders
var ValidPlaceholders = []string{"{path}", "{summary}", "{branch}"}

// LineParams contains the values for placeholder substitution
type LineParams struct {
	Path    string // shortened working directory, already styled
	Summary string // rendered repository summary, may be empty
	Branch  string // branch name, may be empty
}

// placeholderRegex matches {placeholder-name} patterns
var placeholderRegex = regexp.MustCompile(`\{[a-z-]+\}`)

// ValidateFormat checks if a format string is valid
// Returns error if format contains unknown placeholders
func ValidateFormat(format string) error {
	for _, match := range placeholderRegex.FindAllString(format, -1) {
		if !slices.Contains(ValidPlaceholders, match) {
			return fmt.Errorf("unknown placeholder %q in format %q (valid: %s)",
				match, format, strings.Join(ValidPlaceholders, ", "))
		}
	}

	hasPlaceholder := slices.ContainsFunc(ValidPlaceholders, func(p string) bool {
		return strings.Contains(format, p)
	})
	if !hasPlaceholder {
		return fmt.Errorf("format %q must contain at least one placeholder (%s)",
			format, strings.Join(ValidPlaceholders, ", "))
	}

	return nil
}

// FormatLine substitutes params into format in a single pass, so values
// that happen to contain placeholder text are left alone.
func FormatLine(format string, params LineParams) string {
	r := strings.NewReplacer(
		"{path}", params.Path,
		"{summary}", params.Summary,
		"{branch}", params.Branch,
	)
	return r.Replace(format)
}
