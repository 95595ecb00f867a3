package errors

import (
	"fmt"
	"io"
	"sort"
)

// Sink receives diagnostics as they are found. The parser and the analyzer
// write to it directly; nothing they report is ever taken back.
type Sink interface {
	Report(err CompilerError)
}

// Listing is an append-only Sink that keeps diagnostics in report order.
type Listing struct {
	errs []CompilerError
}

func NewListing() *Listing {
	return &Listing{}
}

func (l *Listing) Report(err CompilerError) {
	l.errs = append(l.errs, err)
}

// Errors returns the recorded diagnostics in the order they were reported.
func (l *Listing) Errors() []CompilerError {
	return l.errs
}

func (l *Listing) Len() int {
	return len(l.errs)
}

func (l *Listing) HasErrors() bool {
	for _, e := range l.errs {
		if e.Level == Error {
			return true
		}
	}
	return false
}

// Count returns the number of errors recorded for phase.
func (l *Listing) Count(phase Phase) int {
	n := 0
	for _, e := range l.errs {
		if e.Phase == phase && e.Level == Error {
			n++
		}
	}
	return n
}

// Sorted returns a copy ordered by source line; diagnostics on the same
// line keep their report order.
func (l *Listing) Sorted() []CompilerError {
	out := make([]CompilerError, len(l.errs))
	copy(out, l.errs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position.Line < out[j].Position.Line
	})
	return out
}

// WriteTo prints the plain listing in source-line order, one line per
// diagnostic:
//
//	>>> Syntax error at line 3: unexpected token ';'
func (l *Listing) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range l.Sorted() {
		n, err := fmt.Fprintf(w, ">>> %s\n", e.Error())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
