package codegen

import (
	"fmt"
	"go/format"
	"os"

	"github.com/dave/jennifer/jen"

	"nfaviz/internal/compiler"
)

// Config holds the inputs for Go source generation.
type Config struct {
	Pattern    string // original infix expression, recorded in the header
	Postfix    string // compiled postfix form, recorded in the header
	Name       string // identifier prefix for the generated declarations
	Package    string // package name of the generated file
	OutputFile string
	Automaton  *compiler.Automaton
}

// Generate emits a Go source file embedding the automaton as data: a
// transition struct type, start/accept state constants, an epsilon label
// constant and the transition table in construction order. No matching
// code is generated; consumers bring their own traversal.
func Generate(cfg Config) error {
	if cfg.Automaton == nil {
		return fmt.Errorf("no automaton to generate from")
	}

	name := UpperFirst(cfg.Name)
	f := jen.NewFile(cfg.Package)
	f.Comment(fmt.Sprintf("Code generated by nfaviz for pattern: %s", cfg.Pattern))
	f.Comment(fmt.Sprintf("Postfix form: %s", cfg.Postfix))
	f.Comment("DO NOT EDIT.")
	f.Line()

	f.Comment(fmt.Sprintf("%s%s labels transitions that consume no input.", name, EpsilonSuffix))
	f.Const().Id(name + EpsilonSuffix).Op("=").Lit(compiler.Epsilon)
	f.Line()

	f.Const().Defs(
		jen.Id(name+StartSuffix).Op("=").Lit(int(cfg.Automaton.Start)),
		jen.Id(name+AcceptSuffix).Op("=").Lit(int(cfg.Automaton.Accept)),
	)
	f.Line()

	f.Type().Id(name+TransitionSuffix).Struct(
		jen.Id("From").Int(),
		jen.Id("Label").String(),
		jen.Id("To").Int(),
	)
	f.Line()

	entries := make([]jen.Code, 0, len(cfg.Automaton.Transitions))
	for _, t := range cfg.Automaton.Transitions {
		entries = append(entries, jen.Values(
			jen.Lit(int(t.From)), jen.Lit(t.Label), jen.Lit(int(t.To)),
		))
	}
	f.Var().Id(name + TransitionsSuffix).Op("=").
		Index().Id(name + TransitionSuffix).Values(entries...)

	if err := f.Save(cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if err := formatFile(cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}
	return nil
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
