// Package symtab implements the scoped symbol table used by semantic
// analysis: a stack of scopes, each an ordered map from name to entry.
package symtab

import (
	"errors"
	"fmt"

	"cminus/internal/ast"
)

var (
	// ErrDuplicate is returned by Declare when the name already exists in
	// the current scope.
	ErrDuplicate = errors.New("duplicate identifier")

	// ErrScopeUnderflow is returned by ExitScope when only the outermost
	// scope is open.
	ErrScopeUnderflow = errors.New("symbol table: exit from outermost scope")
)

type Entry struct {
	Name string
	Decl ast.Decl // not owned
	Line int
}

type scope struct {
	byName map[string]*Entry
	order  []*Entry
}

func newScope() *scope {
	return &scope{byName: make(map[string]*Entry)}
}

type Table struct {
	scopes []*scope
}

// New returns a table with one empty outermost scope.
func New() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset discards every scope and opens a fresh outermost one.
func (t *Table) Reset() {
	t.scopes = []*scope{newScope()}
}

// Depth is the number of open scopes; the outermost scope alone is depth 1.
func (t *Table) Depth() int {
	return len(t.scopes)
}

func (t *Table) current() *scope {
	return t.scopes[len(t.scopes)-1]
}

// Declare adds name to the current scope. A name already present in the
// current scope is left untouched and ErrDuplicate is returned; names in
// enclosing scopes are shadowed.
func (t *Table) Declare(name string, decl ast.Decl, line int) error {
	s := t.current()
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("%w %q", ErrDuplicate, name)
	}
	e := &Entry{Name: name, Decl: decl, Line: line}
	s.byName[name] = e
	s.order = append(s.order, e)
	return nil
}

// Lookup searches from the innermost scope outwards.
func (t *Table) Lookup(name string) (*Entry, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if e, ok := t.scopes[i].byName[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// LookupLocal searches the current scope only.
func (t *Table) LookupLocal(name string) (*Entry, bool) {
	e, ok := t.current().byName[name]
	return e, ok
}

func (t *Table) EnterScope() {
	t.scopes = append(t.scopes, newScope())
}

// ExitScope discards the current scope and every entry declared in it.
func (t *Table) ExitScope() error {
	if len(t.scopes) <= 1 {
		return ErrScopeUnderflow
	}
	t.scopes[len(t.scopes)-1] = nil
	t.scopes = t.scopes[:len(t.scopes)-1]
	return nil
}

// CurrentScope returns the entries of the current scope in declaration order.
func (t *Table) CurrentScope() []*Entry {
	s := t.current()
	out := make([]*Entry, len(s.order))
	copy(out, s.order)
	return out
}

// Visible returns every name reachable from the current scope, innermost
// first, each name once.
func (t *Table) Visible() []string {
	seen := make(map[string]bool)
	var names []string
	for i := len(t.scopes) - 1; i >= 0; i-- {
		for _, e := range t.scopes[i].order {
			if !seen[e.Name] {
				seen[e.Name] = true
				names = append(names, e.Name)
			}
		}
	}
	return names
}
