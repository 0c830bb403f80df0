// Package codegen exports compiled automatons as Graphviz DOT and as
// generated Go source.
package codegen

import "fmt"

// Identifier suffixes used in generated Go code. A compilation named
// "Email" yields EmailTransition, EmailTransitions, EmailStart,
// EmailAccept and EmailEpsilon.
const (
	TransitionSuffix  = "Transition"
	TransitionsSuffix = "Transitions"
	StartSuffix       = "Start"
	AcceptSuffix      = "Accept"
	EpsilonSuffix     = "Epsilon"
)

// StateName returns the display name of a state, e.g. "q0".
func StateName(id int) string {
	return fmt.Sprintf("q%d", id)
}

// UpperFirst converts the first character of a string to uppercase, so a
// user-supplied name always produces exported identifiers.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
