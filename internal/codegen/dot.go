package codegen

import (
	"fmt"
	"io"

	"nfaviz/internal/compiler"
)

// WriteDOT writes a Graphviz representation of the automaton to w.
//
// The graph is laid out left to right with a point-shaped pseudo-node
// marking the start state and a doublecircle on the accepting state.
// Edges appear in the automaton's transition order, so output is
// byte-identical for identical input.
func WriteDOT(w io.Writer, a *compiler.Automaton) {
	fmt.Fprintln(w, "digraph NFA {")
	fmt.Fprintln(w, "    rankdir=LR;")
	fmt.Fprintf(w, "    _start [shape=point];\n")
	fmt.Fprintf(w, "    _start -> %s;\n", a.Start)
	fmt.Fprintf(w, "    %s [shape=doublecircle];\n", a.Accept)
	for _, t := range a.Transitions {
		fmt.Fprintf(w, "    %s -> %s [label=\"%s\"];\n", t.From, t.To, t.Label)
	}
	fmt.Fprintln(w, "}")
}
