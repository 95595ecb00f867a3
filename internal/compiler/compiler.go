// Package compiler drives one compilation unit through the front end:
// parsing, name resolution and type checking. Every call builds its own
// parser, analyzer and symbol table, so units may be compiled concurrently.
package compiler

import (
	"fmt"
	"io"
	"os"

	"cminus/internal/ast"
	"cminus/internal/errors"
	"cminus/internal/parser"
	"cminus/internal/semantic"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cminus.compiler")

// Options tune a single compilation.
type Options struct {
	// MaxDepth limits statement and expression nesting; zero selects
	// parser.DefaultMaxDepth.
	MaxDepth int

	// Trace, when set, receives the symbol table listing.
	Trace io.Writer
}

// Result is everything the front end produced for one unit.
type Result struct {
	Program *ast.Program
	Listing *errors.Listing

	// Failed is the semantic error flag. Syntax errors do not set it.
	Failed bool
}

// OK reports whether the unit compiled without any diagnostic.
func (r *Result) OK() bool {
	return !r.Failed && !r.Listing.HasErrors()
}

// Compile parses and analyzes source. Diagnostics end up in the result's
// listing; the error is reserved for failures of the compiler itself, in
// which case the partial result is still returned.
func Compile(filename, source string, opts Options) (*Result, error) {
	listing := errors.NewListing()

	var parseOpts []parser.Option
	if opts.MaxDepth > 0 {
		parseOpts = append(parseOpts, parser.WithMaxDepth(opts.MaxDepth))
	}

	log.Debugf("parsing %s (%d bytes)", filename, len(source))
	prog := parser.ParseSource(filename, source, listing, parseOpts...)
	log.Debugf("%s: %d syntax error(s)", filename, listing.Count(errors.PhaseSyntax))

	analyzer := semantic.NewAnalyzer(listing)
	analyzer.Trace = opts.Trace
	err := analyzer.Analyze(prog)

	result := &Result{
		Program: prog,
		Listing: listing,
		Failed:  analyzer.Failed(),
	}
	if err != nil {
		log.Errorf("%s: %s", filename, err.Error())
		return result, fmt.Errorf("analyzing %s: %w", filename, err)
	}

	log.Infof("%s: %d syntax and %d semantic error(s)", filename,
		listing.Count(errors.PhaseSyntax), listing.Count(errors.PhaseSemantic))
	return result, nil
}

// CompileFile reads path and compiles its contents.
func CompileFile(path string, opts Options) (*Result, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)
	result, err := Compile(path, source, opts)
	return result, source, err
}
