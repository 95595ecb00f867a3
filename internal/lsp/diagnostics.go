package lsp

import (
	"cminus/internal/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ConvertDiagnostics transforms compiler diagnostics into LSP diagnostics.
// Syntax and lexical errors are attributed to the parser, the rest to the
// semantic analyzer.
func ConvertDiagnostics(errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, e := range errs {
		line := uint32(max(0, e.Position.Line-1))     // 0-based
		start := uint32(max(0, e.Position.Column-1)) // 0-based

		source := "cminus-semantic"
		if e.Phase == errors.PhaseSyntax {
			source = "cminus-parser"
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(max(1, e.Length))},
			},
			Severity: ptrSeverity(severity(e.Level)),
			Code:     &protocol.IntegerOrString{Value: e.Code},
			Source:   ptrString(source),
			Message:  e.Message,
		})
	}

	return diagnostics
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
