// Package nfaviz converts restricted regular expressions into explicit
// non-deterministic finite automata via Thompson's Construction, and can
// export the result as Graphviz DOT or as generated Go source.
//
// The supported syntax is literal single-character symbols plus
// alternation '|', Kleene star '*' and grouping '()'. Concatenation is
// implicit and compiled to an explicit '.' operator in the postfix form.
package nfaviz

import (
	"fmt"
	"os"

	"nfaviz/internal/codegen"
	"nfaviz/internal/compiler"
)

// Re-exported core types so callers never import internal packages.
type (
	State      = compiler.State
	Transition = compiler.Transition
	Automaton  = compiler.Automaton
	Issue      = compiler.Issue
)

// Epsilon is the label of transitions that consume no input.
const Epsilon = compiler.Epsilon

// Result is the outcome of one successful conversion.
type Result struct {
	Pattern   string // the infix expression as supplied
	Postfix   string // the compiled postfix form
	Automaton *Automaton
}

// Validate runs the advisory pre-compilation checks on an infix
// expression. A non-empty result does not prevent calling Convert;
// compilation enforces its own invariants independently.
func Validate(pattern string) []Issue {
	return compiler.Validate(pattern)
}

// Convert compiles an infix expression to postfix and builds the Thompson
// NFA. Each call owns its own state counter, so concurrent calls need no
// coordination and identical inputs always produce identical automatons.
func Convert(pattern string) (*Result, error) {
	postfix, err := compiler.ToPostfix(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}

	automaton, err := compiler.Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}

	return &Result{Pattern: pattern, Postfix: postfix, Automaton: automaton}, nil
}

// Options configures Generate.
type Options struct {
	// Pattern is the infix regular expression to convert.
	Pattern string

	// Name is the prefix for generated identifiers (e.g. "Email" generates
	// EmailTransitions). Required when OutputFile is set.
	Name string

	// Package is the Go package name for the generated code. Required when
	// OutputFile is set.
	Package string

	// OutputFile is the path for generated Go source; empty disables it.
	OutputFile string

	// DOTFile is the path for Graphviz output; empty disables it.
	DOTFile string

	// Verbose enables stage logging to stderr.
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.OutputFile == "" && o.DOTFile == "" {
		return fmt.Errorf("no output requested: set OutputFile or DOTFile")
	}
	if o.OutputFile != "" {
		if o.Name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		if o.Package == "" {
			return fmt.Errorf("package cannot be empty")
		}
	}
	return nil
}

// Generate converts the pattern and writes the requested exports.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger := compiler.NewLogger(opts.Verbose)
	logger.Section("Conversion")
	logger.Log("Pattern: %s", opts.Pattern)

	for _, issue := range Validate(opts.Pattern) {
		logger.Log("Validation: %s", issue.Message)
	}

	res, err := Convert(opts.Pattern)
	if err != nil {
		return err
	}
	logger.Log("Postfix: %s", res.Postfix)
	logger.Log("States: %d, transitions: %d",
		len(res.Automaton.States()), len(res.Automaton.Transitions))

	if opts.DOTFile != "" {
		logger.Section("DOT Export")
		f, err := os.Create(opts.DOTFile)
		if err != nil {
			return fmt.Errorf("failed to create DOT file: %w", err)
		}
		codegen.WriteDOT(f, res.Automaton)
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write DOT file: %w", err)
		}
		logger.Log("DOT written to %s", opts.DOTFile)
	}

	if opts.OutputFile != "" {
		logger.Section("Code Generation")
		cfg := codegen.Config{
			Pattern:    opts.Pattern,
			Postfix:    res.Postfix,
			Name:       opts.Name,
			Package:    opts.Package,
			OutputFile: opts.OutputFile,
			Automaton:  res.Automaton,
		}
		if err := codegen.Generate(cfg); err != nil {
			return fmt.Errorf("failed to generate code: %w", err)
		}
		logger.Log("Go source written to %s", opts.OutputFile)
	}

	return nil
}
