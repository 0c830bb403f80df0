package compiler

import "strings"

// IssueKind classifies an advisory validation finding.
type IssueKind int

const (
	IssueUnbalancedParens IssueKind = iota
	IssueLeadingOperator
	IssueTrailingAlternation
	IssueConsecutiveAlternation
)

// Issue is a non-fatal problem found in an infix expression before
// compilation. Issues are advisory: ToPostfix and Build enforce their own
// invariants independently.
type Issue struct {
	Kind    IssueKind
	Message string
}

// Validate runs every pre-compilation check against the infix expression
// and returns all findings. The checks are independent of each other and
// never short-circuit, so callers can report every problem at once. An
// empty result means no issues were found.
//
// Validate is deterministic: repeated calls on the same input yield the
// same issue sequence.
func Validate(infix string) []Issue {
	var issues []Issue

	if strings.Count(infix, "(") != strings.Count(infix, ")") {
		issues = append(issues, Issue{
			Kind:    IssueUnbalancedParens,
			Message: "unbalanced parentheses",
		})
	}

	runes := []rune(infix)
	if len(runes) > 0 && (runes[0] == '|' || runes[0] == '*') {
		issues = append(issues, Issue{
			Kind:    IssueLeadingOperator,
			Message: "expression must not start with '|' or '*'",
		})
	}
	if len(runes) > 0 && runes[len(runes)-1] == '|' {
		issues = append(issues, Issue{
			Kind:    IssueTrailingAlternation,
			Message: "expression must not end with '|'",
		})
	}
	if strings.Contains(infix, "||") {
		issues = append(issues, Issue{
			Kind:    IssueConsecutiveAlternation,
			Message: "expression must not contain consecutive '|'",
		})
	}

	return issues
}
