package errors

import (
	"fmt"
	"strings"

	"cminus/internal/ast"
	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// Phase records which pass produced a diagnostic.
type Phase string

const (
	PhaseSyntax   Phase = "Syntax"
	PhaseSemantic Phase = "Semantic"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Phase       Phase
	Code        string       // Error code like E0001
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message string
}

// Error implements the error interface with the one-line listing form.
func (e CompilerError) Error() string {
	return fmt.Sprintf("%s error at line %d: %s", e.Phase, e.Position.Line, e.Message)
}

// ErrorReporter renders diagnostics against the source they refer to.
type ErrorReporter struct {
	filename string
	lines    []string
	tabWidth int
}

// NewErrorReporter creates a reporter for one source file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
		tabWidth: 4,
	}
}

// FormatError renders err as a header, the offending source line with a
// marker under the reported span, and any suggestions and notes:
//
//	error[E0001]: identifier 'cuont' unknown or out of scope
//	    --> test.cm:3:12 (semantic)
//	    │
//	  3 │     return cuont;
//	    │            ^^^^^
//	    │ help try: did you mean 'count'?
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	gutter := strings.Repeat(" ", er.gutterWidth(err.Position.Line))

	er.writeHeader(&b, err)
	er.writeLocation(&b, gutter, err)
	er.writeExcerpt(&b, gutter, err)
	er.writeFooter(&b, gutter, err)

	b.WriteString("\n")
	return b.String()
}

// FormatErrors formats every error in order
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	return b.String()
}

func (er *ErrorReporter) writeHeader(b *strings.Builder, err CompilerError) {
	level := levelColor(err.Level)(string(err.Level))
	if err.Code != "" {
		fmt.Fprintf(b, "%s[%s]: %s\n", level, err.Code, err.Message)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", level, err.Message)
}

func (er *ErrorReporter) writeLocation(b *strings.Builder, gutter string, err CompilerError) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(b, "%s %s %s:%d:%d", gutter, dim("-->"), er.filename, err.Position.Line, err.Position.Column)
	if err.Phase != "" {
		fmt.Fprintf(b, " (%s)", strings.ToLower(string(err.Phase)))
	}
	fmt.Fprintf(b, "\n%s %s\n", gutter, dim("│"))
}

// writeExcerpt prints the source line with tabs expanded so the marker
// lines up with the reported column.
func (er *ErrorReporter) writeExcerpt(b *strings.Builder, gutter string, err CompilerError) {
	line := err.Position.Line
	if line <= 0 || line > len(er.lines) {
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	text, column := er.expandTabs(er.lines[line-1], err.Position.Column)
	fmt.Fprintf(b, "%s %s %s\n", bold(fmt.Sprintf("%*d", len(gutter), line)), dim("│"), text)
	fmt.Fprintf(b, "%s %s %s\n", gutter, dim("│"), marker(column, err.Length, err.Level))
}

func (er *ErrorReporter) writeFooter(b *strings.Builder, gutter string, err CompilerError) {
	dim := color.New(color.Faint).SprintFunc()

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		for i, suggestion := range err.Suggestions {
			label := cyan("help") + " " + cyan("try") + ":"
			if i > 0 {
				label = cyan("        ")
			}
			fmt.Fprintf(b, "%s %s %s %s\n", gutter, dim("│"), label, suggestion.Message)
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(b, "%s %s %s %s\n", gutter, dim("│"), blue("note:"), note)
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(b, "%s %s %s %s\n", gutter, dim("│"), green("help:"), err.HelpText)
	}
}

// expandTabs replaces tabs in line and maps the 1-based column onto the
// expanded text.
func (er *ErrorReporter) expandTabs(line string, column int) (string, int) {
	if !strings.Contains(line, "\t") {
		return line, column
	}
	var b strings.Builder
	mapped := column
	for i, r := range line {
		if i == column-1 {
			mapped = b.Len() + 1
		}
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", er.tabWidth-b.Len()%er.tabWidth))
			continue
		}
		b.WriteRune(r)
	}
	if column-1 >= len(line) {
		mapped = b.Len() + column - len(line)
	}
	return b.String(), mapped
}

func (er *ErrorReporter) gutterWidth(line int) int {
	return max(3, len(fmt.Sprint(line)))
}

func levelColor(level ErrorLevel) func(...any) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func marker(column, length int, level ErrorLevel) string {
	return strings.Repeat(" ", max(0, column-1)) + levelColor(level)(strings.Repeat("^", max(1, length)))
}
