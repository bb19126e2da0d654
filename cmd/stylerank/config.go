// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	parser "github.com/rafaelvolkmer/stylerank/internal/adapter/parser"
	"github.com/rafaelvolkmer/stylerank/internal/engine/analyzer"
	"github.com/rafaelvolkmer/stylerank/internal/engine/complexity"
	"github.com/rafaelvolkmer/stylerank/internal/engine/suggest"
	"github.com/rafaelvolkmer/stylerank/internal/infrastructure"
)

// settings is the resolved configuration of analyze and watch.
type settings struct {
	Root         string
	Paths        []string
	Workers      int
	Extensions   []string
	Excludes     []string
	Format       string
	Locale       string
	LengthPolicy complexity.LengthPolicy
	HotspotLimit int
	Changed      bool
	Verbose      bool
}

// addAnalysisFlags declares the flags shared by analyze and watch.
func addAnalysisFlags(flagSet *pflag.FlagSet, defaultFormat string) {
	flagSet.String("path", ".", "Project root; the snapshot is stored under <path>/.stylerank")
	flagSet.Int("workers", 0, "Number of files analyzed concurrently (0 = use NumCPU)")
	flagSet.String("ext", strings.Join(parser.Extensions(), ","), "Comma-separated list of file extensions to include")
	flagSet.String("exclude", "", "Comma-separated glob patterns to skip (e.g. \"**/*.min.js,legacy/**\")")
	flagSet.String("format", defaultFormat, "Output format (text|status|json|yaml|sarif)")
	flagSet.String("locale", "en", "Language of messages and suggestions (en|ko)")
	flagSet.String("length-policy", string(complexity.LengthPerFunction), "Length penalty policy (function|file)")
	flagSet.Int("hotspot-limit", suggest.DefaultHotspotLimit, "Maximum hotspot suggestions per file (3-5)")
	flagSet.BoolP("verbose", "v", false, "Enable debug logging")
}

// loadSettings reads the bound configuration. Positional arguments select
// the files or directories to analyze; a single directory argument also
// becomes the root unless --path was given.
func loadSettings(config *viper.Viper, flagSet *pflag.FlagSet) (settings, error) {
	policy, err := complexity.ParseLengthPolicy(config.GetString("length-policy"))
	if err != nil {
		return settings{}, err
	}

	s := settings{
		Root:         config.GetString("path"),
		Workers:      config.GetInt("workers"),
		Extensions:   parseExtensions(config.GetString("ext")),
		Excludes:     parseList(config.GetString("exclude")),
		Format:       config.GetString("format"),
		Locale:       config.GetString("locale"),
		LengthPolicy: policy,
		HotspotLimit: suggest.ClampHotspotLimit(config.GetInt("hotspot-limit")),
		Changed:      config.GetBool("changed"),
		Verbose:      config.GetBool("verbose"),
	}

	args := flagSet.Args()
	if len(args) == 1 && !flagSet.Changed("path") {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			s.Root = args[0]
			return s, nil
		}
	}
	s.Paths = args
	return s, nil
}

func (s settings) analyzerOptions() analyzer.Options {
	return analyzer.Options{
		LengthPolicy: s.LengthPolicy,
		HotspotLimit: s.HotspotLimit,
		Locale:       s.Locale,
	}
}

func (s settings) pathFilter() (*infrastructure.PathFilter, error) {
	return infrastructure.NewPathFilter(s.Extensions, s.Excludes)
}

func debounceOf(config *viper.Viper) time.Duration {
	d := config.GetDuration("debounce")
	if d <= 0 {
		return infrastructure.DefaultDebounce
	}
	return d
}

// setupLogger installs a text slog handler on stderr and returns it.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// bindFlags parses args and binds the flag set into config so environment
// variables and the config file fill in flags left unset.
func bindFlags(config *viper.Viper, flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if err := config.BindPFlags(flagSet); err != nil {
		return fmt.Errorf("bind flags to viper: %w", err)
	}
	return nil
}

// parseExtensions normalizes a comma-separated list of file extensions into a
// slice of dot-prefixed extensions.
//
// Examples:
//
//	parseExtensions("js,ts")       -> []string{".js", ".ts"}
//	parseExtensions(".js,.jsx")    -> []string{".js", ".jsx"}
func parseExtensions(raw string) []string {
	var extensions []string
	for _, part := range parseList(raw) {
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		extensions = append(extensions, part)
	}
	return extensions
}

// parseList splits a comma-separated value, dropping empty items.
func parseList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
