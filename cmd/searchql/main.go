// Command searchql is a thin CLI driver over the searchql package, in the
// spirit of the teacher's examples/main.go: no CLI framework, just flag and
// fmt, because nothing else in the reference pack's third-party stack has a
// plausible claim on a six-flag query-DSL debugging tool (see DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oarkflow/searchql"
	"github.com/oarkflow/searchql/ast"
	"github.com/oarkflow/searchql/parser"
)

func main() {
	var (
		tokenizerName = flag.String("tokenizer", "fsm", "tokenizer implementation name")
		parserName    = flag.String("parser", parser.ShiftReduceName, "parser implementation name (shift_reduce|recdec)")
		output        = flag.String("output", "ast", "output form: ast|esq|tokens|spans")
		optimizer     = flag.String("optimizer", string(searchql.OptimizerEOIFold), "post-parse optimiser: none|stfap")
		debugMemory   = flag.Bool("debug-memory", false, "report parser arena slab/byte usage on stderr")
		file          = flag.String("file", "-", "read query text from file, or - for stdin")
	)
	flag.Parse()

	input, err := readInput(*file)
	if err != nil {
		fatal("read input", err)
	}

	if err := run(*tokenizerName, *parserName, *output, searchql.Optimizer(*optimizer), *debugMemory, input); err != nil {
		fatal("run", err)
	}
}

func readInput(file string) (string, error) {
	if file == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	return string(b), err
}

func run(tokenizerName, parserName, output string, optimizer searchql.Optimizer, debugMemory bool, input string) error {
	toks, err := searchql.Tokenize(tokenizerName, input)
	if err != nil {
		return err
	}

	if output == "tokens" || output == "spans" {
		printTokens(output, toks)
		return nil
	}

	var tree ast.Expr
	if debugMemory {
		r := parser.NewReusable()
		tree, err = r.Parse(toks)
		if err != nil {
			return err
		}
		stats := r.Stats()
		fmt.Fprintf(os.Stderr, "arena: %d slab(s), %d byte(s) used in current slab\n", stats.Slabs, stats.BytesUsed)
	} else {
		tree, err = searchql.Parse(parserName, toks)
		if err != nil {
			return err
		}
	}

	if optimizer == searchql.OptimizerEOIFold {
		tree = ast.Fold(tree)
	}

	switch output {
	case "ast":
		fmt.Println(dumpAST(tree, 0))
	case "esq":
		fmt.Println(searchql.Render(tree))
	default:
		return fmt.Errorf("unknown --output %q: want ast, esq, tokens, or spans", output)
	}
	return nil
}

func printTokens(output string, toks []searchql.TokenSpan) {
	for _, t := range toks {
		if output == "spans" {
			fmt.Printf("%-14s [%d:%d] %q\n", t.Kind, t.Start, t.End, t.Raw())
		} else {
			fmt.Printf("%-14s %q\n", t.Kind, t.Raw())
		}
	}
}

// dumpAST renders a tree's Go-level shape, indented by nesting depth. This
// is the CLI's debug view; Render (the "esq" mode) is the canonical
// re-parseable text form.
func dumpAST(e ast.Expr, depth int) string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch v := e.(type) {
	case ast.Empty:
		return indent + "Empty"
	case ast.Tag:
		return fmt.Sprintf("%sTag(%s)", indent, v.Name)
	case ast.Field:
		return fmt.Sprintf("%sField(%s)", indent, v.Name)
	case ast.Comparison:
		return fmt.Sprintf("%sComparison(%s %s %s)", indent, v.Field, v.Op, v.Value.Raw)
	case ast.Apply:
		return fmt.Sprintf("%sApply(%s)\n%s", indent, v.Op, dumpAST(v.Child, depth+1))
	case ast.Combine:
		s := fmt.Sprintf("%sCombine(%s)", indent, v.Op)
		for _, c := range v.Children {
			s += "\n" + dumpAST(c, depth+1)
		}
		return s
	case ast.Group:
		s := indent + "Group"
		for _, c := range v.Children {
			s += "\n" + dumpAST(c, depth+1)
		}
		return s
	default:
		return fmt.Sprintf("%s%T", indent, v)
	}
}

func fatal(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s failed: %v\n", step, err)
	os.Exit(1)
}
