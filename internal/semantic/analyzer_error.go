package semantic

import (
	goerrors "errors"
	"fmt"

	"cminus/internal/ast"
	"cminus/internal/errors"
)

// ErrInternal marks a defect in the compiler rather than in the program
// being compiled.
var ErrInternal = goerrors.New("internal compiler error")

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	key := diagKey{code: err.Code, pos: err.Position}
	if a.reported[key] {
		return
	}
	a.reported[key] = true

	a.failed = true
	a.errors = append(a.errors, err)
	if a.sink != nil {
		a.sink.Report(err)
	}
}

func (a *Analyzer) addUndeclaredError(name string, pos ast.Position) {
	// Suggest names that are in scope at the point of use
	a.addCompilerError(errors.UndeclaredIdentifier(name, pos, a.symbols.Visible()))
}

// internalError records the first inconsistency; later ones are dropped.
func (a *Analyzer) internalError(format string, args ...any) {
	if a.internal == nil {
		a.internal = fmt.Errorf("%w: "+format, append([]any{ErrInternal}, args...)...)
	}
}
