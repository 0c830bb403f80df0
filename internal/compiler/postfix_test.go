package compiler

import (
	"errors"
	"testing"
)

func TestInsertConcat(t *testing.T) {
	tests := []struct {
		name  string
		infix string
		want  string
	}{
		{"empty", "", ""},
		{"single symbol", "a", "a"},
		{"two symbols", "ab", "a.b"},
		{"three symbols", "abc", "a.b.c"},
		{"alternation untouched", "a|b", "a|b"},
		{"star then symbol", "a*b", "a*.b"},
		{"group then symbol", "(a|b)c", "(a|b).c"},
		{"adjacent groups", "(a)(b)", "(a).(b)"},
		{"symbol before group", "a(b)", "a.(b)"},
		{"no marker before star", "ab*", "a.b*"},
		{"no marker after opening paren", "(ab)", "(a.b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := insertConcat(tt.infix); got != tt.want {
				t.Errorf("insertConcat(%q) = %q, want %q", tt.infix, got, tt.want)
			}
		})
	}
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name  string
		infix string
		want  string
	}{
		{"empty", "", ""},
		{"single symbol", "a", "a"},
		{"concat", "ab", "ab."},
		{"literal run", "abc", "ab.c."},
		{"alternation", "a|b", "ab|"},
		{"star binds tighter than concat", "a*b", "a*b."},
		{"star on last symbol", "ab*", "ab*."},
		{"grouped alternation starred", "(a|b)*c", "ab|*c."},
		{"nested groups", "((a))", "a"},
		{"adjacent groups concatenate", "(a)(b)", "ab."},
		{"alternation of concats", "ab|cd", "ab.cd.|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(tt.infix)
			if err != nil {
				t.Fatalf("ToPostfix(%q) returned error: %v", tt.infix, err)
			}
			if got != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.infix, got, tt.want)
			}
		})
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	tests := []struct {
		name  string
		infix string
	}{
		{"unclosed paren", "(a"},
		{"stray closing paren", "a)"},
		{"closing before opening", ")("},
		{"nested unclosed", "((a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToPostfix(tt.infix)
			if !errors.Is(err, ErrUnbalancedParen) {
				t.Errorf("ToPostfix(%q) error = %v, want ErrUnbalancedParen", tt.infix, err)
			}
		})
	}
}

func TestToPostfixPure(t *testing.T) {
	first, err := ToPostfix("(a|b)*c")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := ToPostfix("(a|b)*c")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Errorf("ToPostfix not deterministic: %q vs %q", first, second)
	}
}
