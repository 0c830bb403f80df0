// Command nfaviz converts a regular expression into a Thompson NFA and
// prints the postfix form plus a transition listing. It can additionally
// export the automaton as Graphviz DOT, render a PNG via the dot binary,
// or generate Go source embedding the transition table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"text/tabwriter"

	"nfaviz/internal/codegen"
	"nfaviz/pkg/nfaviz"
)

func main() {
	pattern := flag.String("re", "", "regular expression (required)")
	outFile := flag.String("o", "", "DOT output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng (requires -o)")
	genFile := flag.String("gen", "", "generated Go output file")
	name := flag.String("name", "Regex", "identifier prefix for generated code")
	pkg := flag.String("pkg", "main", "package name for generated code")
	verbose := flag.Bool("v", false, "verbose stage logging during generation")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: nfaviz -re <pattern> [-o file [-png]] [-gen file -name N -pkg P] [-v]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	for _, issue := range nfaviz.Validate(*pattern) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", issue.Message)
	}

	res, err := nfaviz.Convert(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nfaviz: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("pattern: %s\n", res.Pattern)
	fmt.Printf("postfix: %s\n", res.Postfix)
	fmt.Printf("states:  %d\n\n", len(res.Automaton.States()))
	printTransitions(os.Stdout, res.Automaton)

	if *outFile != "" {
		if err := writeDOT(*outFile, *pngFlag, res.Automaton); err != nil {
			fmt.Fprintf(os.Stderr, "nfaviz: %v\n", err)
			os.Exit(1)
		}
	}

	if *genFile != "" {
		err := nfaviz.Generate(nfaviz.Options{
			Pattern:    *pattern,
			Name:       *name,
			Package:    *pkg,
			OutputFile: *genFile,
			Verbose:    *verbose,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "nfaviz: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Go source written to %s\n", *genFile)
	}
}

// printTransitions writes an aligned from/label/to listing.
func printTransitions(w io.Writer, a *nfaviz.Automaton) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tLABEL\tTO")
	for _, t := range a.Transitions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.From, t.Label, t.To)
	}
	tw.Flush()
}

// writeDOT exports the automaton as DOT, to stdout when path is "-", or
// pipes it through dot -Tpng when png is set.
func writeDOT(path string, png bool, a *nfaviz.Automaton) error {
	var buf bytes.Buffer
	codegen.WriteDOT(&buf, a)

	if png {
		if path == "-" {
			return fmt.Errorf("-png needs a file path, not stdout")
		}
		cmd := exec.Command("dot", "-Tpng", "-o", path)
		cmd.Stdin = &buf
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		fmt.Printf("PNG written to %s\n", path)
		return nil
	}

	if path == "-" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	fmt.Printf("DOT written to %s\n", path)
	return nil
}
