package compiler

import "fmt"

// Epsilon is the label used for transitions that consume no input. It is
// distinct from every possible literal symbol (literals are single
// characters, Epsilon is a multi-byte string).
const Epsilon = "ε"

// State identifies a node in the automaton. Identifiers are assigned
// monotonically within one Build invocation and carry no meaning beyond
// distinguishing nodes. Independent invocations may reuse identifiers.
type State int

// String returns the textual form used by renderers, e.g. "q0".
func (s State) String() string {
	return fmt.Sprintf("q%d", int(s))
}

// Transition is a directed, labeled edge of the automaton. Label is either
// a single literal symbol or Epsilon. Parallel transitions between the same
// pair of states are permitted and preserved.
type Transition struct {
	From  State
	Label string
	To    State
}

// Automaton is the result of Thompson's Construction: a start state, a
// single accepting state and the full transition list in construction
// order. The order is deterministic for identical input and renderers may
// rely on it.
type Automaton struct {
	Start       State
	Accept      State
	Transitions []Transition
}

// States returns every state of the automaton in order of first
// appearance: Start, then each transition endpoint, then Accept.
func (a *Automaton) States() []State {
	seen := make(map[State]bool)
	var states []State
	add := func(s State) {
		if !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	add(a.Start)
	for _, t := range a.Transitions {
		add(t.From)
		add(t.To)
	}
	add(a.Accept)
	return states
}

// fragment is the construction-time unit: a sub-automaton that begins
// consuming at start and has consumed its match upon reaching accept.
// Fragments are combined and discarded during Build; only the final
// fragment's fields survive as the Automaton.
type fragment struct {
	start  State
	accept State
	trans  []Transition
}

// builder owns the state counter for a single Build invocation. The
// counter is never shared across invocations, so concurrent Builds need
// no coordination.
type builder struct {
	next State
}

func (b *builder) newState() State {
	s := b.next
	b.next++
	return s
}

// Build runs a stack-based Thompson's Construction over a postfix token
// stream, as produced by ToPostfix. Every character that is not one of
// '.', '|', '*' is treated as a literal symbol.
//
// No partial automaton is returned on failure: underflow of the fragment
// stack yields an *InsufficientOperandsError, an empty input yields
// ErrEmptyExpression, and more than one residual fragment yields a
// *MalformedPostfixError.
func Build(postfix string) (*Automaton, error) {
	if postfix == "" {
		return nil, ErrEmptyExpression
	}

	var b builder
	var stack []fragment

	for _, r := range postfix {
		switch r {
		case '.':
			if len(stack) < 2 {
				return nil, &InsufficientOperandsError{Op: r, Depth: len(stack)}
			}
			f2 := stack[len(stack)-1]
			f1 := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			trans := make([]Transition, 0, len(f1.trans)+1+len(f2.trans))
			trans = append(trans, f1.trans...)
			trans = append(trans, Transition{f1.accept, Epsilon, f2.start})
			trans = append(trans, f2.trans...)
			stack = append(stack, fragment{f1.start, f2.accept, trans})

		case '|':
			if len(stack) < 2 {
				return nil, &InsufficientOperandsError{Op: r, Depth: len(stack)}
			}
			f2 := stack[len(stack)-1]
			f1 := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			start := b.newState()
			accept := b.newState()
			trans := make([]Transition, 0, len(f1.trans)+len(f2.trans)+4)
			trans = append(trans,
				Transition{start, Epsilon, f1.start},
				Transition{start, Epsilon, f2.start})
			trans = append(trans, f1.trans...)
			trans = append(trans, f2.trans...)
			trans = append(trans,
				Transition{f1.accept, Epsilon, accept},
				Transition{f2.accept, Epsilon, accept})
			stack = append(stack, fragment{start, accept, trans})

		case '*':
			if len(stack) < 1 {
				return nil, &InsufficientOperandsError{Op: r, Depth: len(stack)}
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			start := b.newState()
			accept := b.newState()
			trans := make([]Transition, 0, len(f.trans)+4)
			trans = append(trans,
				Transition{start, Epsilon, f.start}, // enter the loop
				Transition{start, Epsilon, accept})  // zero repetitions
			trans = append(trans, f.trans...)
			trans = append(trans,
				Transition{f.accept, Epsilon, f.start}, // repeat
				Transition{f.accept, Epsilon, accept})  // exit after >=1
			stack = append(stack, fragment{start, accept, trans})

		default:
			start := b.newState()
			accept := b.newState()
			stack = append(stack, fragment{start, accept, []Transition{
				{start, string(r), accept},
			}})
		}
	}

	switch len(stack) {
	case 0:
		return nil, ErrEmptyExpression
	case 1:
		f := stack[0]
		return &Automaton{Start: f.start, Accept: f.accept, Transitions: f.trans}, nil
	default:
		return nil, &MalformedPostfixError{Fragments: len(stack)}
	}
}
