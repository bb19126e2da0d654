// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/stylerank/internal/engine/complexity"
	"github.com/rafaelvolkmer/stylerank/internal/usecase"
)

func TestParseExtensions(t *testing.T) {
	assert.Equal(t, []string{".js", ".ts"}, parseExtensions("js, ts"))
	assert.Equal(t, []string{".jsx"}, parseExtensions(".jsx,,"))
	assert.Empty(t, parseExtensions(""))
}

func analyzeFlags(t *testing.T, app *App, args ...string) (settings, error) {
	t.Helper()
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	addAnalysisFlags(flagSet, usecase.DefaultFormat)
	flagSet.Bool("changed", false, "")
	require.NoError(t, bindFlags(app.config, flagSet, args))
	return loadSettings(app.config, flagSet)
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".stylerank.yaml", []byte("format: yaml\nlocale: ko\nhotspot-limit: 4\nlength-policy: file\n"), 0o644))
	t.Setenv("STYLERANK_LOCALE", "en")

	app, err := NewApp()
	require.NoError(t, err)

	cfg, err := analyzeFlags(t, app, "--format", "json")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 4, cfg.HotspotLimit)
	assert.Equal(t, complexity.LengthIncludeFile, cfg.LengthPolicy)
	assert.Equal(t, ".", cfg.Root)
}

func TestSettingsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	app, err := NewApp()
	require.NoError(t, err)

	cfg, err := analyzeFlags(t, app, "--hotspot-limit", "9", "--exclude", "**/*.min.js, legacy/**")
	require.NoError(t, err)

	assert.Equal(t, usecase.DefaultFormat, cfg.Format)
	assert.Equal(t, complexity.LengthPerFunction, cfg.LengthPolicy)
	assert.Equal(t, 5, cfg.HotspotLimit)
	assert.Equal(t, []string{"**/*.min.js", "legacy/**"}, cfg.Excludes)
	assert.Contains(t, cfg.Extensions, ".tsx")
}

func TestSettingsRejectsUnknownPolicy(t *testing.T) {
	t.Chdir(t.TempDir())
	app, err := NewApp()
	require.NoError(t, err)

	_, err = analyzeFlags(t, app, "--length-policy", "project")
	assert.Error(t, err)
}

func TestPositionalArguments(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	require.NoError(t, os.Mkdir("web", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("web", "a.js"), []byte("x\n"), 0o644))

	app, err := NewApp()
	require.NoError(t, err)
	cfg, err := analyzeFlags(t, app, "web")
	require.NoError(t, err)
	assert.Equal(t, "web", cfg.Root)
	assert.Empty(t, cfg.Paths)

	app, err = NewApp()
	require.NoError(t, err)
	cfg, err = analyzeFlags(t, app, "web/a.js", "web")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, []string{"web/a.js", "web"}, cfg.Paths)
}

func TestBrokenConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".stylerank.yaml", []byte("format: [unclosed\n"), 0o644))

	_, err := NewApp()
	assert.Error(t, err)
}

func TestAnalyzeThenReport(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	require.NoError(t, os.WriteFile("a.js", []byte("const total = price * 3;\n"), 0o644))

	app, err := NewApp()
	require.NoError(t, err)
	require.NoError(t, app.runAnalyze(context.Background(), []string{"--format", "json"}))
	require.FileExists(t, filepath.Join(root, ".stylerank", "report.json"))

	app, err = NewApp()
	require.NoError(t, err)
	require.NoError(t, app.runReport(context.Background(), []string{"--format", "status"}))
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	writeCatalog(&buf, usecase.NewListRulesUseCase().Execute(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Metrics:")
	assert.Contains(t, out, "loose-equality")
	assert.Contains(t, out, "max-parameters")
}

func TestPickRequiresTerminal(t *testing.T) {
	t.Chdir(t.TempDir())
	app, err := NewApp()
	require.NoError(t, err)

	// go test runs without a controlling terminal on stdin
	err = app.runPick(context.Background(), nil)
	assert.ErrorIs(t, err, errNotTerminal)
}
