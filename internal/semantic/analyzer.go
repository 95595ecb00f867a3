package semantic

import (
	"io"

	"cminus/internal/ast"
	"cminus/internal/errors"
	"cminus/internal/symtab"
)

// Analyzer runs the two semantic passes over one compilation unit. All
// state that the passes share lives here, so independent units can be
// analyzed side by side.
type Analyzer struct {
	symbols   *symtab.Table
	sink      errors.Sink
	errors    []errors.CompilerError
	reported  map[diagKey]bool
	failed    bool          // sticky: set by any semantic diagnostic
	enclosing *ast.FuncDecl // function whose body is being resolved
	internal  error         // first internal-consistency violation

	// Trace, when set, receives the symbol table listing during resolution.
	Trace io.Writer
}

type diagKey struct {
	code string
	pos  ast.Position
}

// NewAnalyzer returns an analyzer that reports to sink. sink may be nil,
// in which case diagnostics are only available through GetErrors.
func NewAnalyzer(sink errors.Sink) *Analyzer {
	return &Analyzer{
		symbols:  symtab.New(),
		sink:     sink,
		reported: make(map[diagKey]bool),
	}
}

// Analyze resolves every name in prog and then type-checks it. Semantic
// problems are reported as diagnostics; the returned error is non-nil only
// when the analyzer itself hit an inconsistency.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	if err := a.BuildSymbolTable(prog); err != nil {
		return err
	}
	return a.CheckTypes(prog)
}

// Failed reports whether any semantic diagnostic has been issued. Once
// set it stays set for the lifetime of the analyzer.
func (a *Analyzer) Failed() bool {
	return a.failed
}

// GetErrors returns all semantic diagnostics in report order
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

// Symbols exposes the symbol table, mainly for tests and tooling. After a
// completed resolution pass only the outermost scope is open.
func (a *Analyzer) Symbols() *symtab.Table {
	return a.symbols
}
