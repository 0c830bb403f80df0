package compiler

import (
	"errors"
	"fmt"
)

// ErrUnbalancedParen is returned by ToPostfix when the expression contains
// a ')' without a matching '(' or leaves a '(' unclosed.
var ErrUnbalancedParen = errors.New("unbalanced parenthesis")

// ErrEmptyExpression is returned by Build when the postfix input produces
// no automaton fragments at all.
var ErrEmptyExpression = errors.New("empty expression")

// InsufficientOperandsError is returned by Build when an operator is
// encountered with fewer fragments on the construction stack than it
// consumes.
type InsufficientOperandsError struct {
	Op    rune // the offending operator
	Depth int  // stack depth at the time of failure
}

func (e *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("operator %q needs more operands (stack depth %d)", e.Op, e.Depth)
}

// MalformedPostfixError is returned by Build when more than one fragment
// remains after the whole token stream has been consumed. This means the
// postfix input was not a single well-formed expression.
type MalformedPostfixError struct {
	Fragments int // residual fragment count, always > 1
}

func (e *MalformedPostfixError) Error() string {
	return fmt.Sprintf("malformed postfix expression: %d fragments remain", e.Fragments)
}
