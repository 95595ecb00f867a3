package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSuccess(t *testing.T) {
	path := writeFile(t, "ok.cm", "void main(void) { output(input()); }\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-ast", path}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "(func void main (params) (block (call output (call input))))")
	assert.Contains(t, stdout.String(), "Successfully processed")
	assert.Empty(t, stderr.String())
}

func TestRunListing(t *testing.T) {
	path := writeFile(t, "bad.cm", "void main(void) { y = 1; }\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-listing", path}, &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stdout.String(), ">>> Semantic error at line 1: identifier 'y' unknown or out of scope\n")
	assert.Contains(t, stdout.String(), "Compilation failed")
}

func TestRunRichDiagnostics(t *testing.T) {
	path := writeFile(t, "bad.cm", "int f(void) { return; }\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stdout.String(), "RETURN-expression is either missing or not integer")
	assert.Contains(t, stdout.String(), "E0006")
}

func TestRunTrace(t *testing.T) {
	path := writeFile(t, "trace.cm", "int f(int a) { return a; }\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-trace", path}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "--- f ")
	assert.Contains(t, stdout.String(), "Scalar of type int")
}

func TestRunConfigFile(t *testing.T) {
	cfg := writeFile(t, "cminus.yaml", "trace: true\ncolor: false\n")
	path := writeFile(t, "prog.cm", "int x;\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfg, path}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "Scope Identifier")
}

func TestRunUsageErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitProblem, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: cminus")

	stderr.Reset()
	assert.Equal(t, exitProblem, run([]string{filepath.Join(t.TempDir(), "missing.cm")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "failed to read file")

	stderr.Reset()
	assert.Equal(t, exitProblem, run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml"), "x.cm"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "failed to read config")
}
