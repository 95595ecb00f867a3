package symtab

import (
	"fmt"
	"io"
	"strings"

	"cminus/internal/ast"
)

const (
	identWidth = 12
	rulerWidth = 45
)

// WriteHeader prints the column headings of the trace listing.
func WriteHeader(w io.Writer) {
	WriteRuler(w, "")
	fmt.Fprintln(w, "Scope Identifier  Line  Is a  Symbol type")
	fmt.Fprintln(w, "depth  Decl. parm?")
}

// WriteRuler prints a dashed separator, optionally labelled:
//
//	--- gcd ---------------------------------------
func WriteRuler(w io.Writer, label string) {
	n := 0
	var b strings.Builder
	b.WriteString("---")
	if label != "" {
		b.WriteString(" " + label + " ")
		n = len(label) + 2
	}
	b.WriteString(strings.Repeat("-", max(0, rulerWidth-n)))
	fmt.Fprintln(w, b.String())
}

// DumpScope prints the entries of the current scope, oldest first.
func (t *Table) DumpScope(w io.Writer) {
	depth := t.Depth() - 1
	for _, e := range t.current().order {
		parm := 'N'
		if ast.IsParam(e.Decl) {
			parm = 'Y'
		}
		fmt.Fprintf(w, "%3d   %-*s   %7d     %c    %s\n",
			depth, identWidth, e.Name, e.Line, parm, Describe(e.Decl))
	}
}

// Describe renders the declared type of d for the trace listing.
func Describe(d ast.Decl) string {
	switch d := d.(type) {
	case *ast.ScalarDecl:
		return fmt.Sprintf("Scalar of type %s", d.DataType)
	case *ast.ArrayDecl:
		if d.IsParam {
			return fmt.Sprintf("Array of type %s", d.ElemType)
		}
		return fmt.Sprintf("Array of type %s with %d elements", d.ElemType, d.Size)
	case *ast.FuncDecl:
		return fmt.Sprintf("Function with return type %s", d.ReturnType)
	default:
		return "<<ERROR>>"
	}
}
