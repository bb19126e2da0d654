// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Command stylerank grades JavaScript and TypeScript sources by complexity
// and style.
//
// It exposes five subcommands:
//
//   - analyze: analyze files, persist a JSON snapshot and print the report
//   - report:  render the last saved snapshot in different formats
//   - watch:   re-analyze files every time they are saved
//   - pick:    browse the findings of the last snapshot and open them in $EDITOR
//   - rules:   list the metrics and style rules
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	gitadapter "github.com/rafaelvolkmer/stylerank/internal/adapter/git"
	outputadapter "github.com/rafaelvolkmer/stylerank/internal/adapter/output"
	parser "github.com/rafaelvolkmer/stylerank/internal/adapter/parser"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
	"github.com/rafaelvolkmer/stylerank/internal/infrastructure"
)

const (
	// envPrefix defines the prefix used for environment variables that
	// configure the CLI. For example:
	//
	//   STYLERANK_FORMAT=json
	//   STYLERANK_LENGTH_POLICY=file
	envPrefix = "STYLERANK"

	// configName is the optional YAML file read from the working directory.
	configName = ".stylerank"
)

// App wires configuration, shared dependencies and command handlers for the CLI.
type App struct {
	config *viper.Viper
	deps   *Dependencies
}

// Dependencies groups the services shared by the commands. Services that
// depend on flags (scanner, analyzer, watcher) are built per command.
type Dependencies struct {
	Storage   *infrastructure.FileStorage
	GitClient ports.ChangedFilesLister
	Parsers   []ports.SyntaxParser
	Renderers *outputadapter.RendererRegistry
	Logger    *slog.Logger
}

// NewApp constructs an App with a Viper instance reading, in order of
// precedence, bound flags, STYLERANK_* variables and .stylerank.yaml.
//
// Hyphens in flag names map to underscores in variable names.
func NewApp() (*App, error) {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	config.SetConfigName(configName)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read %s.yaml: %w", configName, err)
		}
	}

	deps := &Dependencies{
		Storage:   infrastructure.NewFileStorage(),
		GitClient: gitadapter.NewGitCLI(),
		Parsers: []ports.SyntaxParser{
			parser.NewJSParser(),
		},
		Renderers: outputadapter.NewDefaultRegistry(),
		Logger:    slog.Default(),
	}

	return &App{
		config: config,
		deps:   deps,
	}, nil
}

// main creates a root context canceled on interrupt, initializes the App and
// dispatches to the subcommand. All process exit codes are decided here.
func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	rootContext, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := NewApp()
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}

	command := os.Args[1]
	commandArgs := os.Args[2:]

	switch command {
	case "analyze":
		err = application.runAnalyze(rootContext, commandArgs)
	case "report":
		err = application.runReport(rootContext, commandArgs)
	case "watch":
		err = application.runWatch(rootContext, commandArgs)
	case "pick":
		err = application.runPick(rootContext, commandArgs)
	case "rules":
		err = application.runRules(rootContext, commandArgs)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		log.Printf("unknown command %q\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Printf("error: %v", err)
		stop()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `stylerank - complexity and style grader for JavaScript and TypeScript

Usage:
  stylerank analyze [options] [paths...]
  stylerank report  [options] [path]
  stylerank watch   [options] [paths...]
  stylerank pick    [options] [path]
  stylerank rules

Commands:
  analyze   Analyze files and persist a snapshot under .stylerank/report.json
  report    Render the last snapshot (%s)
  watch     Re-analyze files on save and print their status
  pick      Browse the findings of the last snapshot and open them in $EDITOR
  rules     List metrics and style rules

Run "stylerank <command> -h" for command-specific flags.
`, strings.Join(outputadapter.NewDefaultRegistry().Formats(), ", "))
}
