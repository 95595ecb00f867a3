package errors

import (
	"fmt"
	"strings"

	"cminus/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating diagnostics with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Phase:    PhaseSemantic,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSyntaxError creates a builder for diagnostics raised while parsing
func NewSyntaxError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	b := NewSemanticError(code, message, pos)
	b.err.Phase = PhaseSyntax
	return b
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// Syntax diagnostics

// UnexpectedToken reports a token the parser cannot use at this point.
func UnexpectedToken(token string, pos ast.Position, length int) CompilerError {
	return NewSyntaxError(ErrorSyntax, fmt.Sprintf("unexpected token %s", token), pos).
		WithLength(length).
		Build()
}

// ExpectedType reports a declaration that does not start with int or void.
func ExpectedType(token string, pos ast.Position, length int) CompilerError {
	return NewSyntaxError(ErrorSyntax, fmt.Sprintf("expected a type identifier but got %s", token), pos).
		WithLength(length).
		WithHelp("declarations start with 'int' or 'void'").
		Build()
}

// NotAnLvalue reports an assignment whose left side is not a variable.
func NotAnLvalue(pos ast.Position) CompilerError {
	return NewSyntaxError(ErrorSyntax, "attempt to assign to something not an lvalue", pos).
		WithSuggestion("assign to a variable or an array element").
		Build()
}

// LexicalError reports input the scanner could not turn into a token.
func LexicalError(message string, pos ast.Position, length int) CompilerError {
	return NewSyntaxError(ErrorLexical, message, pos).
		WithLength(length).
		Build()
}

// NestingTooDeep reports source nested beyond the parser's depth limit.
func NestingTooDeep(limit int, pos ast.Position) CompilerError {
	return NewSyntaxError(ErrorNestingTooDeep, fmt.Sprintf("nesting too deep (limit %d)", limit), pos).
		WithNote("the rest of the file was not parsed").
		Build()
}

// LiteralOutOfRange reports an integer constant that does not fit in an int.
func LiteralOutOfRange(raw string, pos ast.Position) CompilerError {
	return NewSyntaxError(ErrorLiteralOutOfRange, fmt.Sprintf("integer literal %s out of range", raw), pos).
		WithLength(len(raw)).
		Build()
}

// Semantic diagnostics

// UndeclaredIdentifier creates an error for unresolved names with suggestions
func UndeclaredIdentifier(name string, pos ast.Position, visible []string) CompilerError {
	builder := NewSemanticError(ErrorUndeclaredIdentifier,
		fmt.Sprintf("identifier '%s' unknown or out of scope", name), pos).
		WithLength(len(name))

	similar := findSimilarNames(name, visible)
	if len(similar) == 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(similar) > 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	} else {
		builder = builder.WithSuggestion("make sure the name is declared before use")
	}
	return builder.Build()
}

// DuplicateIdentifier reports a second declaration of a name in one scope.
func DuplicateIdentifier(name string, pos ast.Position, firstLine int) CompilerError {
	return NewSemanticError(ErrorDuplicateIdentifier,
		fmt.Sprintf("duplicate identifier '%s'", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("'%s' was first declared at line %d", name, firstLine)).
		Build()
}

// NotAFunction reports a call whose target is a variable.
func NotAFunction(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorNotAFunction,
		fmt.Sprintf("identifier '%s' is an illegal type: not a function", name), pos).
		WithLength(len(name)).
		Build()
}

// ConditionNotInteger reports an if/while condition of the wrong type.
func ConditionNotInteger(stmt string, actual ast.ExpType, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorConditionNotInteger,
		fmt.Sprintf("%s-expression must be integer, found %s", strings.ToUpper(stmt), actual), pos).
		Build()
}

// OperandsNotInteger reports an arithmetic or relational operator applied to non-integers.
func OperandsNotInteger(op string, left, right ast.ExpType, pos ast.Position) CompilerError {
	kind := "arithmetic"
	if ast.IsRelational(op) {
		kind = "relational"
	}
	return NewSemanticError(ErrorOperandsNotInteger,
		fmt.Sprintf("%s operators must have integer operands", kind), pos).
		WithLength(len(op)).
		WithNote(fmt.Sprintf("'%s' applied to %s and %s", op, left, right)).
		Build()
}

// ParameterMismatch reports a call whose arguments do not match the callee's parameters.
func ParameterMismatch(name string, expected, actual []ast.ExpType, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorParameterMismatch,
		fmt.Sprintf("formal and actual parameters to function '%s' don't match", name), pos).
		WithLength(len(name))

	if len(expected) != len(actual) {
		builder = builder.WithNote(fmt.Sprintf("expected %d argument(s), found %d", len(expected), len(actual)))
	} else {
		builder = builder.WithNote(fmt.Sprintf("expected (%s), found (%s)", typeList(expected), typeList(actual)))
	}
	return builder.Build()
}

// MissingReturnValue reports a return in an int function without an integer value.
func MissingReturnValue(function string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorMissingReturnValue,
		"RETURN-expression is either missing or not integer", pos).
		WithLength(len("return")).
		WithNote(fmt.Sprintf("function '%s' returns int", function)).
		Build()
}

// VoidReturnValue reports a return with a value inside a void function.
func VoidReturnValue(function string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorVoidReturnValue,
		"RETURN-expression must be void", pos).
		WithLength(len("return")).
		WithNote(fmt.Sprintf("function '%s' is declared void", function)).
		WithSuggestion("remove the return value or declare the function as 'int'").
		Build()
}

// IllegalIdentifierUse reports an identifier used against its declaration, e.g. indexing a scalar.
func IllegalIdentifierUse(name string, declared ast.ExpType, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorIllegalIdentifierUse,
		fmt.Sprintf("identifier '%s' is an illegal type", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("'%s' is declared as %s and cannot be indexed", name, declared)).
		Build()
}

// AssignmentMismatch reports an assignment between non-integer values.
func AssignmentMismatch(target, value ast.ExpType, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorAssignmentMismatch,
		"both assigning and assigned expression must be integer", pos).
		WithNote(fmt.Sprintf("assigning %s to %s", value, target)).
		Build()
}

// IndexNotInteger reports an array subscript of the wrong type.
func IndexNotInteger(name string, actual ast.ExpType, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorIndexNotInteger,
		fmt.Sprintf("index of array '%s' must be integer, found %s", name, actual), pos).
		WithLength(len(name)).
		Build()
}

// UnknownOperator reports an operator the type checker does not recognise.
func UnknownOperator(op string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorUnknownOperator,
		fmt.Sprintf("error in type checker: unknown operator '%s'", op), pos).
		WithHelp("this is a compiler bug").
		Build()
}

func typeList(types []ast.ExpType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
