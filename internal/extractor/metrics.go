package extractor

import (
	"regexp"
	"strings"
)

// Branching keywords counted by Complexity. The trailing entry matches the
// ternary "?" token. Matching is lexical: occurrences inside string literals
// and comments count too, which keeps the metric reproducible across
// languages at the cost of some overcounting.
var complexityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bif\b`),
	regexp.MustCompile(`\bfor\b`),
	regexp.MustCompile(`\bwhile\b`),
	regexp.MustCompile(`\belif\b`),
	regexp.MustCompile(`\belse\b`),
	regexp.MustCompile(`\bcase\b`),
	regexp.MustCompile(`\bswitch\b`),
	regexp.MustCompile(`\bcatch\b`),
	regexp.MustCompile(`\b\?\b`),
}

// CountLines splits a code slice on line breaks and returns the effective
// line count and the comment line count. Blank lines are ignored. A line is
// a comment line iff its trimmed form starts with one of "#", "//", "/*" or
// "*". There is no block-comment state tracking; the per-line check is a
// deliberate approximation and downstream metrics depend on it staying as is.
func CountLines(code string) (loc, commentLines int) {
	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if strings.HasPrefix(stripped, "#") ||
			strings.HasPrefix(stripped, "//") ||
			strings.HasPrefix(stripped, "/*") ||
			strings.HasPrefix(stripped, "*") {
			commentLines++
		} else {
			loc++
		}
	}
	return loc, commentLines
}

// Complexity returns a cyclomatic complexity approximation: 1 plus the
// number of branching-keyword occurrences anywhere in the code slice.
func Complexity(code string) int {
	complexity := 1
	for _, pattern := range complexityPatterns {
		complexity += len(pattern.FindAllStringIndex(code, -1))
	}
	return complexity
}
