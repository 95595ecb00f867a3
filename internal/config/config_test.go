package config

import (
	"os"
	"path/filepath"
	"testing"

	"cminus/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Trace)
	assert.True(t, cfg.Color)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace: true\nmax_depth: 50\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Trace: true, MaxDepth: 50, Color: false}, cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.True(t, cfg.Color)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsBadInput(t *testing.T) {
	cfg := Default()
	assert.Error(t, Parse([]byte("max_depth: -3\n"), &cfg))

	cfg = Default()
	assert.Error(t, Parse([]byte("trace: [oops\n"), &cfg))
}

func TestParseZeroDepthMeansDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("max_depth: 0\n"), &cfg))
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
}
