package errors

// Error codes for the cminus compiler
// These codes are used in diagnostics and by the language server
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Parser and scanner errors
// E0900-E0999: Internal compiler errors

const (
	// E0001: Identifier or call target not found in any enclosing scope
	ErrorUndeclaredIdentifier = "E0001"

	// E0002: Call to something that is not a function
	ErrorNotAFunction = "E0002"

	// E0003: if/while condition is not an integer
	ErrorConditionNotInteger = "E0003"

	// E0004: Arithmetic or relational operand is not an integer
	ErrorOperandsNotInteger = "E0004"

	// E0005: Argument list does not match the parameter list
	ErrorParameterMismatch = "E0005"

	// E0006: int function returns nothing or a non-integer
	ErrorMissingReturnValue = "E0006"

	// E0007: void function returns a value
	ErrorVoidReturnValue = "E0007"

	// E0008: Identifier used in a way its declaration does not allow
	ErrorIllegalIdentifierUse = "E0008"

	// E0009: Name declared twice in the same scope
	ErrorDuplicateIdentifier = "E0009"

	// E0010: Assignment between non-integer values
	ErrorAssignmentMismatch = "E0010"

	// E0011: Array subscript is not an integer
	ErrorIndexNotInteger = "E0011"
)

const (
	// E0100: Unexpected token
	ErrorSyntax = "E0100"

	// E0101: Malformed input rejected by the scanner
	ErrorLexical = "E0101"

	// E0102: Statement or expression nesting exceeds the configured limit
	ErrorNestingTooDeep = "E0102"

	// E0103: Integer literal does not fit in an int
	ErrorLiteralOutOfRange = "E0103"
)

const (
	// E0900: Operator the type checker does not recognise
	ErrorUnknownOperator = "E0900"
)

// ErrorDescriptions provides human-readable descriptions for error codes
var ErrorDescriptions = map[string]string{
	ErrorUndeclaredIdentifier: "Identifier is not declared in any enclosing scope",
	ErrorNotAFunction:         "Called name does not refer to a function",
	ErrorConditionNotInteger:  "Condition of if or while must be an integer",
	ErrorOperandsNotInteger:   "Operator operands must be integers",
	ErrorParameterMismatch:    "Formal and actual parameters do not match",
	ErrorMissingReturnValue:   "Return expression is missing or not an integer",
	ErrorVoidReturnValue:      "Void function cannot return a value",
	ErrorIllegalIdentifierUse: "Identifier used with an illegal type",
	ErrorDuplicateIdentifier:  "Identifier declared twice in the same scope",
	ErrorAssignmentMismatch:   "Both sides of an assignment must be integers",
	ErrorIndexNotInteger:      "Array index must be an integer",
	ErrorSyntax:               "Unexpected token",
	ErrorLexical:              "Invalid character or unterminated comment",
	ErrorNestingTooDeep:       "Nesting too deep",
	ErrorLiteralOutOfRange:    "Integer literal out of range",
	ErrorUnknownOperator:      "Unknown operator reached the type checker",
}

// GetErrorDescription returns a human-readable description for an error code
func GetErrorDescription(code string) string {
	if desc, exists := ErrorDescriptions[code]; exists {
		return desc
	}
	return "Unknown error code"
}

// IsSyntaxError reports whether code belongs to the parser/scanner range.
func IsSyntaxError(code string) bool {
	return code >= "E0100" && code <= "E0199"
}

// IsInternalError reports whether code signals a compiler defect.
func IsInternalError(code string) bool {
	return code >= "E0900" && code <= "E0999"
}
