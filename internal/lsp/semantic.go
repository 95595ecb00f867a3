package lsp

import (
	"slices"

	"cminus/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask over SemanticTokenModifiers
}

// collectSemanticTokens classifies every name and number in prog, ordered
// by position. References take their kind from the declaration they were
// resolved to.
func collectSemanticTokens(prog *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	ast.InspectProgram(prog, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncDecl:
			tokens = append(tokens, makeToken(v.NamePos, v.Name, "function", "declaration")...)
		case *ast.ScalarDecl, *ast.ArrayDecl:
			d := v.(ast.Decl)
			tokens = append(tokens, makeToken(d.DeclNamePos(), d.DeclName(), declKind(d), "declaration")...)
		case *ast.IdentExpr:
			tokens = append(tokens, makeToken(v.Pos, v.Name, declKind(v.Decl), "")...)
		case *ast.CallExpr:
			modifier := ""
			if fn, ok := v.Decl.(*ast.FuncDecl); ok && fn.Builtin {
				modifier = "defaultLibrary"
			}
			tokens = append(tokens, makeToken(v.Pos, v.Name, "function", modifier)...)
		case *ast.LiteralExpr:
			tokens = append(tokens, makeToken(v.Pos, v.Raw, "number", "")...)
		}
		return true
	})

	slices.SortStableFunc(tokens, func(a, b SemanticToken) int {
		if a.Line != b.Line {
			return int(a.Line) - int(b.Line)
		}
		return int(a.StartChar) - int(b.StartChar)
	})
	return tokens
}

func declKind(d ast.Decl) string {
	switch {
	case d == nil:
		return "variable"
	case ast.IsParam(d):
		return "parameter"
	case ast.DeclaredType(d) == ast.Function:
		return "function"
	default:
		return "variable"
	}
}

// encodeSemanticTokens produces the LSP wire format, where each token is
// five integers relative to the previous one.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// makeToken creates a semantic token for value starting at pos. Nodes
// without a source position, such as builtins, yield nothing.
func makeToken(pos ast.Position, value, tokenType, modifier string) []SemanticToken {
	if value == "" || pos.Line <= 0 || pos.Column <= 0 {
		return nil
	}

	modifiers := 0
	if modifier != "" {
		modifiers = 1 << indexOf(modifier, SemanticTokenModifiers)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: modifiers,
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	if i := slices.Index(list, target); i >= 0 {
		return i
	}
	return 0
}
