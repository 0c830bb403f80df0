package codegen

import (
	"bytes"
	"strings"
	"testing"

	"nfaviz/internal/compiler"
)

func convert(t *testing.T, infix string) *compiler.Automaton {
	t.Helper()
	postfix, err := compiler.ToPostfix(infix)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", infix, err)
	}
	a, err := compiler.Build(postfix)
	if err != nil {
		t.Fatalf("Build(%q): %v", postfix, err)
	}
	return a
}

func TestWriteDOT(t *testing.T) {
	a := convert(t, "a|b")

	var buf bytes.Buffer
	WriteDOT(&buf, a)
	out := buf.String()

	for _, want := range []string{
		"digraph NFA {",
		"rankdir=LR;",
		"_start [shape=point];",
		"_start -> " + a.Start.String() + ";",
		a.Accept.String() + " [shape=doublecircle];",
		"[label=\"" + compiler.Epsilon + "\"]",
		"[label=\"a\"]",
		"[label=\"b\"]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}

	// One edge line per transition, parallel edges preserved.
	if got := strings.Count(out, "label="); got != len(a.Transitions) {
		t.Errorf("edge count = %d, want %d", got, len(a.Transitions))
	}
}

func TestWriteDOTDeterministic(t *testing.T) {
	a := convert(t, "(a|b)*c")

	var first, second bytes.Buffer
	WriteDOT(&first, a)
	WriteDOT(&second, a)
	if first.String() != second.String() {
		t.Error("DOT output differs between writes of the same automaton")
	}
}

func TestStateName(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "q0"},
		{1, "q1"},
		{100, "q100"},
	}

	for _, tt := range tests {
		got := StateName(tt.id)
		if got != tt.want {
			t.Errorf("StateName(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"x", "X"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
