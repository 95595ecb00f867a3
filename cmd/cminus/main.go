// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cminus/internal/ast"
	"cminus/internal/compiler"
	"cminus/internal/config"
	"cminus/internal/errors"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitProblem = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("cminus", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML settings file (default ./"+config.DefaultFile+")")
	trace := flags.Bool("trace", false, "print the symbol table while resolving names")
	showTree := flags.Bool("ast", false, "print the syntax tree")
	showTypes := flags.Bool("types", false, "print the syntax tree with inferred types")
	listing := flags.Bool("listing", false, "print plain '>>>' diagnostics instead of rich ones")
	verbose := flags.Int("v", 0, "log verbosity")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cminus [flags] <file.cm>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return exitProblem
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitProblem
	}
	path := flags.Arg(0)

	commonlog.Configure(*verbose, nil)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitProblem
	}
	if *trace {
		cfg.Trace = true
	}
	color.NoColor = color.NoColor || !cfg.Color

	opts := compiler.Options{MaxDepth: cfg.MaxDepth}
	if cfg.Trace {
		opts.Trace = stdout
	}

	startTime := time.Now()
	result, source, err := compiler.CompileFile(path, opts)
	if result == nil {
		fmt.Fprintln(stderr, err)
		return exitProblem
	}

	if *listing {
		if _, werr := result.Listing.WriteTo(stdout); werr != nil {
			fmt.Fprintln(stderr, werr)
		}
	} else {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Fprint(stdout, reporter.FormatErrors(result.Listing.Sorted()))
	}

	switch {
	case *showTypes:
		fmt.Fprintln(stdout, ast.Printer{ShowTypes: true}.Print(result.Program))
	case *showTree:
		fmt.Fprintln(stdout, result.Program)
	}

	duration := formatDuration(time.Since(startTime))

	if err != nil {
		fmt.Fprintln(stderr, color.RedString("internal error: %v", err))
		return exitProblem
	}

	if !result.OK() {
		fmt.Fprintln(stdout, color.RedString("Compilation failed after %s (%d syntax, %d semantic error(s))",
			duration, result.Listing.Count(errors.PhaseSyntax), result.Listing.Count(errors.PhaseSemantic)))
		return exitFailed
	}

	fmt.Fprintln(stdout, color.GreenString("Successfully processed %s in %s", path, duration))
	return exitOK
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
