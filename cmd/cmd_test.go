package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
	"github.com/xkilldash9x/skelgen-cli/internal/config"
)

const sampleSpec = `{
  "children": [
    {"key": "div[1]", "shape": "rect"},
    {"key": "div[1]/p[1]", "shape": "line", "lines": 3}
  ],
  "layout": "stack"
}`

func runValidate(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	cmd := newValidateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommandValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSpec), 0o644))

	out, err := runValidate(t, []string{path}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "valid: 2 primitives")
}

func TestValidateCommandStdin(t *testing.T) {
	out, err := runValidate(t, []string{"-"}, sampleSpec)
	require.NoError(t, err)
	assert.Contains(t, out, "valid: 2 primitives")
}

func TestValidateCommandReportsAllViolations(t *testing.T) {
	bad := `{
  "children": [
    {"key": "", "shape": "rect"},
    {"key": "a", "shape": "rect"},
    {"key": "a", "shape": "blob"}
  ]
}`
	out, err := runValidate(t, []string{"-"}, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 error(s)")
	assert.Contains(t, out, "invalid: child 0 is missing a key")
	assert.Contains(t, out, `invalid: duplicate key "a"`)
	assert.Contains(t, out, `invalid: child 2 has unrecognized shape "blob"`)
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := runValidate(t, []string{filepath.Join(t.TempDir(), "absent.json")}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening spec file")
}

func TestRunGenerateStaticFileToStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	markup := `<div class="card"><h1>Hello</h1><p>World</p></div>`
	require.NoError(t, os.WriteFile(path, []byte(markup), 0o644))

	cfg := config.NewDefaultConfig()
	var out bytes.Buffer
	carrier := &cobra.Command{}
	carrier.SetOut(&out)

	err := runGenerate(context.Background(), zap.NewNop(), cfg, []string{path}, nil, "", carrier)
	require.NoError(t, err)

	spec, err := schemas.DecodeSpec(&out)
	require.NoError(t, err)
	require.Len(t, spec.Children, 3)
	assert.Equal(t, "div[1]", spec.Children[0].Key)
	assert.Equal(t, schemas.ShapeLine, spec.Children[1].Shape)
}

func TestRunGenerateWritesToOutDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landing.html")
	require.NoError(t, os.WriteFile(path, []byte(`<main><p>hi</p></main>`), 0o644))

	outDir := t.TempDir()
	cfg := config.NewDefaultConfig()
	carrier := &cobra.Command{}

	err := runGenerate(context.Background(), zap.NewNop(), cfg, []string{path}, nil, outDir, carrier)
	require.NoError(t, err)

	written, err := os.Open(filepath.Join(outDir, "landing.skeleton.json"))
	require.NoError(t, err)
	defer written.Close()

	spec, err := schemas.DecodeSpec(written)
	require.NoError(t, err)
	assert.Len(t, spec.Children, 2)
}

func TestRunGenerateCustomRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<div class="banner">x</div>`), 0o644))

	rulesPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(rulesPath, []byte(`[
  {"match": {"classContains": "banner"}, "to": {"skip": true}, "priority": 100}
]`), 0o644))

	custom, err := loadRules(rulesPath)
	require.NoError(t, err)
	require.Len(t, custom, 1)

	cfg := config.NewDefaultConfig()
	var out bytes.Buffer
	carrier := &cobra.Command{}
	carrier.SetOut(&out)

	err = runGenerate(context.Background(), zap.NewNop(), cfg, []string{path}, custom, "", carrier)
	require.NoError(t, err)

	spec, err := schemas.DecodeSpec(&out)
	require.NoError(t, err)
	assert.Empty(t, spec.Children, "the banner div is skipped and has no children")
}

func TestLoadRulesEmptyPath(t *testing.T) {
	custom, err := loadRules("")
	require.NoError(t, err)
	assert.Nil(t, custom)
}

func TestSpecFileName(t *testing.T) {
	assert.Equal(t, "page.skeleton.json", specFileName("fixtures/page.html"))
	assert.Equal(t, "index.skeleton.json", specFileName("/var/www/index.htm"))
	assert.Equal(t, "raw.skeleton.json", specFileName("raw"))
}
