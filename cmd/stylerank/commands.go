// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rafaelvolkmer/stylerank/internal/adapter/picker"
	"github.com/rafaelvolkmer/stylerank/internal/engine/analyzer"
	"github.com/rafaelvolkmer/stylerank/internal/infrastructure"
	"github.com/rafaelvolkmer/stylerank/internal/usecase"
)

var errNotTerminal = errors.New("pick needs an interactive terminal")

// runAnalyze handles the "analyze" subcommand.
//
// It analyzes the selected files, persists the snapshot under
// .stylerank/report.json and prints the report to stdout.
//
// Configuration precedence (highest first):
//  1. Command-line flags
//  2. Environment variables STYLERANK_*
//  3. .stylerank.yaml in the working directory
//  4. Built-in defaults
func (a *App) runAnalyze(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flagSet.SortFlags = false

	addAnalysisFlags(flagSet, usecase.DefaultFormat)
	flagSet.Bool("changed", false, "Only analyze files git reports as modified, added or untracked")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  stylerank analyze [options] [paths...]

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := bindFlags(a.config, flagSet, args); err != nil {
		return err
	}
	cfg, err := loadSettings(a.config, flagSet)
	if err != nil {
		return err
	}
	a.deps.Logger = setupLogger(cfg.Verbose)

	analyzeUseCase, err := a.newAnalyzeUseCase(cfg)
	if err != nil {
		return err
	}

	report, err := analyzeUseCase.Execute(ctx, usecase.AnalyzeFilesRequest{
		RootPath:    cfg.Root,
		Paths:       cfg.Paths,
		IncludeExt:  cfg.Extensions,
		ChangedOnly: cfg.Changed,
		Locale:      cfg.Locale,
	})
	if err != nil {
		return err
	}

	reportUseCase := usecase.NewGenerateReportUseCase(a.deps.Storage, a.deps.Renderers)
	renderedOutput, err := reportUseCase.Render(report, cfg.Format)
	if err != nil {
		return err
	}

	return printOutput(os.Stdout, renderedOutput)
}

// runReport handles the "report" subcommand.
//
// It loads the snapshot saved under the given root and renders it in the
// requested format.
func (a *App) runReport(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("path", ".", "Project root (can also be given as positional argument)")
	flagSet.String("format", usecase.DefaultFormat, "Output format (text|status|json|yaml|sarif)")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  stylerank report [options] [path]

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := bindFlags(a.config, flagSet, args); err != nil {
		return err
	}

	rootPath := a.config.GetString("path")
	if remainingArgs := flagSet.Args(); len(remainingArgs) > 0 {
		rootPath = remainingArgs[0]
	}

	reportUseCase := usecase.NewGenerateReportUseCase(a.deps.Storage, a.deps.Renderers)
	renderedOutput, err := reportUseCase.Execute(ctx, usecase.GenerateReportRequest{
		RootPath: rootPath,
		Format:   a.config.GetString("format"),
	})
	if err != nil {
		return err
	}

	return printOutput(os.Stdout, renderedOutput)
}

// runWatch handles the "watch" subcommand. It blocks until interrupted.
func (a *App) runWatch(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("watch", pflag.ContinueOnError)
	flagSet.SortFlags = false

	addAnalysisFlags(flagSet, "status,text")
	flagSet.Duration("debounce", infrastructure.DefaultDebounce, "Quiet period before a batch of saves is analyzed")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  stylerank watch [options] [paths...]

Formats are rendered in order for every batch of saved files.

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := bindFlags(a.config, flagSet, args); err != nil {
		return err
	}
	cfg, err := loadSettings(a.config, flagSet)
	if err != nil {
		return err
	}
	a.deps.Logger = setupLogger(cfg.Verbose)

	filter, err := cfg.pathFilter()
	if err != nil {
		return err
	}
	analyzeUseCase, err := a.newAnalyzeUseCase(cfg)
	if err != nil {
		return err
	}

	watchUseCase := usecase.NewWatchFilesUseCase(
		infrastructure.NewFSWatcher(debounceOf(a.config), filter, a.deps.Logger),
		analyzeUseCase,
		usecase.NewGenerateReportUseCase(a.deps.Storage, a.deps.Renderers),
		os.Stdout,
		a.deps.Logger,
	)

	return watchUseCase.Execute(ctx, usecase.WatchFilesRequest{
		AnalyzeFilesRequest: usecase.AnalyzeFilesRequest{
			RootPath:   cfg.Root,
			Paths:      cfg.Paths,
			IncludeExt: cfg.Extensions,
			Locale:     cfg.Locale,
		},
		Formats: parseList(cfg.Format),
	})
}

// runPick handles the "pick" subcommand.
func (a *App) runPick(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("pick", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("path", ".", "Project root (can also be given as positional argument)")
	flagSet.String("editor", "", "Editor command (defaults to $VISUAL, then $EDITOR, then vi)")

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  stylerank pick [options] [path]

Lists the findings of the last snapshot; Enter opens the selected line.

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := bindFlags(a.config, flagSet, args); err != nil {
		return err
	}

	rootPath := a.config.GetString("path")
	if remainingArgs := flagSet.Args(); len(remainingArgs) > 0 {
		rootPath = remainingArgs[0]
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	pickUseCase := usecase.NewPickLocationUseCase(a.deps.Storage, picker.New(a.config.GetString("editor")))
	return pickUseCase.Execute(ctx, rootPath)
}

// runRules handles the "rules" subcommand.
//
// It has no flags and lists the metrics and style rules to stdout.
func (a *App) runRules(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("rules", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  stylerank rules

Lists the metrics and style rules.
`)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	catalog := usecase.NewListRulesUseCase().Execute(ctx)
	writeCatalog(os.Stdout, catalog)
	return nil
}

func (a *App) newAnalyzeUseCase(cfg settings) (*usecase.AnalyzeFilesUseCase, error) {
	scanner, err := infrastructure.NewFSScanner(cfg.Excludes...)
	if err != nil {
		return nil, err
	}
	return usecase.NewAnalyzeFilesUseCase(
		scanner,
		scanner,
		a.deps.Parsers,
		analyzer.New(cfg.analyzerOptions()),
		a.deps.GitClient,
		a.deps.Storage,
		cfg.Workers,
		a.deps.Logger,
	), nil
}

func writeCatalog(w io.Writer, catalog usecase.Catalog) {
	fmt.Fprintln(w, "Metrics:")
	for _, metric := range catalog.Metrics {
		fmt.Fprintf(w, "- %s (%s)\n    %s\n", metric.Name, metric.ID, metric.Description)
	}
	fmt.Fprintln(w, "\nRules:")
	for _, rule := range catalog.Rules {
		fmt.Fprintf(w, "- %s\n    %s\n", rule.ID, rule.Description)
	}
}

func printOutput(w io.Writer, rendered string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(rendered, "\n"))
	return err
}
