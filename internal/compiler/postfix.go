// Package compiler implements the core regex-to-NFA compilation logic:
// infix to postfix conversion followed by a stack-based Thompson's
// Construction.
package compiler

import "strings"

// Operator precedence: Kleene star binds tightest, then concatenation,
// then alternation.
var precedence = map[rune]int{
	'|': 1,
	'.': 2,
	'*': 3,
}

// insertConcat inserts the synthetic concatenation marker '.' between
// adjacent tokens that are implicitly concatenated, e.g. "ab" -> "a.b"
// and "(a)(b)" -> "(a).(b)". A marker goes after every character except
// '(' and '|' whenever the next character is not '|', ')' or '*'.
func insertConcat(infix string) string {
	runes := []rune(infix)
	if len(runes) <= 1 {
		return infix
	}

	var b strings.Builder
	b.Grow(2 * len(runes))
	for i, r := range runes {
		b.WriteRune(r)
		if r == '(' || r == '|' {
			continue
		}
		if i+1 < len(runes) {
			next := runes[i+1]
			if next != '|' && next != ')' && next != '*' {
				b.WriteRune('.')
			}
		}
	}
	return b.String()
}

// ToPostfix converts an infix regular expression into postfix (reverse
// Polish) form using the shunting-yard algorithm. The returned string
// contains explicit '.' concatenation operators and no parentheses.
//
// ToPostfix is a pure function: it has no side effects and identical
// inputs always produce identical outputs.
func ToPostfix(infix string) (string, error) {
	marked := insertConcat(infix)

	var output []rune
	var stack []rune

	for _, r := range marked {
		switch r {
		case '(':
			stack = append(stack, r)

		case ')':
			for len(stack) > 0 && stack[len(stack)-1] != '(' {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return "", ErrUnbalancedParen
			}
			// Discard the matching '('.
			stack = stack[:len(stack)-1]

		case '|', '.', '*':
			for len(stack) > 0 && stack[len(stack)-1] != '(' &&
				precedence[stack[len(stack)-1]] >= precedence[r] {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, r)

		default:
			output = append(output, r)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top == '(' {
			return "", ErrUnbalancedParen
		}
		output = append(output, top)
		stack = stack[:len(stack)-1]
	}

	return string(output), nil
}
