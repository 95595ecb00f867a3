package errors

import (
	"bytes"
	"strings"
	"testing"

	"cminus/internal/ast"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := `int main(void) {
    int count;
    return cuont;
}`

	reporter := NewErrorReporter("test.cm", source)

	err := UndeclaredIdentifier("cuont", ast.Position{Line: 3, Column: 12}, []string{"count", "main", "input", "output"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUndeclaredIdentifier+"]")
	assert.Contains(t, formatted, "identifier 'cuont' unknown or out of scope")
	assert.Contains(t, formatted, "test.cm:3:12")
	assert.Contains(t, formatted, "return cuont;")
	assert.Contains(t, formatted, "did you mean 'count'?")

	lines := strings.Split(formatted, "\n")
	var marker string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			marker = line
		}
	}
	assert.Contains(t, marker, "^^^^^", "marker should span the identifier")
}

func TestUndeclaredIdentifierWithoutCandidates(t *testing.T) {
	err := UndeclaredIdentifier("zzz", ast.Position{Line: 1}, []string{"count"})
	assert.Equal(t, ErrorUndeclaredIdentifier, err.Code)
	assert.Equal(t, PhaseSemantic, err.Phase)
	require.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "declared before use")
}

func TestUndeclaredIdentifierSeveralCandidates(t *testing.T) {
	err := UndeclaredIdentifier("sum", ast.Position{Line: 1}, []string{"sun", "sums", "x"})
	require.Len(t, err.Suggestions, 1)
	assert.Equal(t, "did you mean one of: 'sun', 'sums'?", err.Suggestions[0].Message)
}

func TestParameterMismatchNotes(t *testing.T) {
	pos := ast.Position{Line: 4}

	arity := ParameterMismatch("g", []ast.ExpType{ast.Integer}, []ast.ExpType{ast.Integer, ast.Integer}, pos)
	assert.Equal(t, ErrorParameterMismatch, arity.Code)
	assert.Equal(t, []string{"expected 1 argument(s), found 2"}, arity.Notes)

	kinds := ParameterMismatch("g", []ast.ExpType{ast.Integer}, []ast.ExpType{ast.Array}, pos)
	assert.Equal(t, []string{"expected (int), found (array)"}, kinds.Notes)
}

func TestSyntaxConstructorsUseSyntaxPhase(t *testing.T) {
	pos := ast.Position{Line: 2, Column: 5}
	for _, err := range []CompilerError{
		UnexpectedToken("';'", pos, 1),
		ExpectedType("identifier 'x'", pos, 1),
		NotAnLvalue(pos),
		LexicalError("unexpected character '@'", pos, 1),
		NestingTooDeep(200, pos),
		LiteralOutOfRange("99999999999999999999", pos),
	} {
		assert.Equal(t, PhaseSyntax, err.Phase, err.Message)
		assert.True(t, IsSyntaxError(err.Code), err.Code)
	}
}

func TestOperandsNotIntegerKind(t *testing.T) {
	pos := ast.Position{Line: 1}
	assert.Equal(t, "arithmetic operators must have integer operands",
		OperandsNotInteger("+", ast.Array, ast.Integer, pos).Message)
	assert.Equal(t, "relational operators must have integer operands",
		OperandsNotInteger("<=", ast.Integer, ast.Void, pos).Message)
}

func TestUnknownOperatorIsInternal(t *testing.T) {
	err := UnknownOperator("%", ast.Position{Line: 1})
	assert.True(t, IsInternalError(err.Code))
	assert.False(t, IsSyntaxError(err.Code))
}

func TestListing(t *testing.T) {
	l := NewListing()
	assert.False(t, l.HasErrors())

	l.Report(UnexpectedToken("';'", ast.Position{Line: 3}, 1))
	l.Report(VoidReturnValue("k", ast.Position{Line: 7}))
	l.Report(UndeclaredIdentifier("y", ast.Position{Line: 2}, nil))

	assert.True(t, l.HasErrors())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Count(PhaseSyntax))
	assert.Equal(t, 2, l.Count(PhaseSemantic))

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, ">>> Semantic error at line 2: identifier 'y' unknown or out of scope\n"+
		">>> Syntax error at line 3: unexpected token ';'\n"+
		">>> Semantic error at line 7: RETURN-expression must be void\n", buf.String())

	sorted := l.Sorted()
	assert.Equal(t, 2, sorted[0].Position.Line)
	assert.Equal(t, 7, sorted[2].Position.Line)
	assert.Equal(t, 3, l.Errors()[0].Position.Line, "Sorted must not reorder the listing")
}

func TestErrorDescriptions(t *testing.T) {
	assert.Equal(t, "Nesting too deep", GetErrorDescription(ErrorNestingTooDeep))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E4242"))
}

func TestErrorReporterExpandsTabs(t *testing.T) {
	source := "void main(void)\n{\n\tx = 1;\n}"
	reporter := NewErrorReporter("tabs.cm", source)

	err := UndeclaredIdentifier("x", ast.Position{Line: 3, Column: 2}, nil)
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "tabs.cm:3:2 (semantic)")
	assert.Contains(t, formatted, "│     x = 1;\n")
	assert.Contains(t, formatted, "│     ^\n")
}

func TestErrorReporterOutOfRangeLine(t *testing.T) {
	reporter := NewErrorReporter("short.cm", "int x;")

	formatted := reporter.FormatError(NestingTooDeep(200, ast.Position{Line: 9, Column: 1}))
	assert.Contains(t, formatted, "error["+ErrorNestingTooDeep+"]")
	assert.Contains(t, formatted, "short.cm:9:1 (syntax)")
	assert.NotContains(t, formatted, "^")
}
