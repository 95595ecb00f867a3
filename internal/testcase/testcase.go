// Package testcase extracts compiler test cases from Markdown files.
//
// Each case starts at a heading of the form "Test: <name>" and holds one
// cminus input fence followed by one or more assertion fences:
//
//	## Test: assignment
//	```cminus
//	void main(void) { int x; x = 1; }
//	```
//	```diagnostics
//	```
package testcase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputLanguage is the fence language of the program under test.
const InputLanguage = "cminus"

// AssertionType is the fence language of an expectation.
type AssertionType string

const (
	// AssertionTree compares the printed, untyped tree.
	AssertionTree AssertionType = "tree"
	// AssertionTypedTree compares the printed tree with inferred types.
	AssertionTypedTree AssertionType = "typed-tree"
	// AssertionDiagnostics compares the plain listing; an empty fence
	// asserts a clean compile.
	AssertionDiagnostics AssertionType = "diagnostics"
)

// Assertion is one expectation of a test case.
type Assertion struct {
	Type    AssertionType
	Content string
	Line    int // line of the fence in the Markdown file
}

// TestCase is a single named program with its expectations.
type TestCase struct {
	Name       string
	Input      string
	Assertions []Assertion
}

// Extract parses a Markdown document and returns its test cases in order.
func Extract(markdown string) ([]TestCase, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []TestCase
	var current *TestCase

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if current != nil {
				if err := validate(current); err != nil {
					return ast.WalkStop, err
				}
				cases = append(cases, *current)
			}
			current = &TestCase{Name: strings.TrimPrefix(heading, "Test: ")}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			line := lineNumber(n, source)

			if current == nil {
				if language != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", line, language)
				}
				return ast.WalkContinue, nil
			}

			content := strings.TrimRight(fenceContent(n, source), "\n")
			switch {
			case language == InputLanguage:
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences in test '%s'", line, current.Name)
				}
				current.Input = content
			case isAssertion(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    line,
				})
			case language != "":
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", line, language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validate(current); err != nil {
			return nil, err
		}
		cases = append(cases, *current)
	}
	return cases, nil
}

func isAssertion(language string) bool {
	switch AssertionType(language) {
	case AssertionTree, AssertionTypedTree, AssertionDiagnostics:
		return true
	}
	return false
}

func validate(tc *TestCase) error {
	if tc.Input == "" {
		return fmt.Errorf("test '%s' has no input fence", tc.Name)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", tc.Name)
	}
	return nil
}

func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(source[:min(start, len(source))], []byte("\n")) + 1
}
