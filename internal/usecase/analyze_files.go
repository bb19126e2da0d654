// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

// ErrNoSourceFiles is returned when nothing under the requested paths can be
// analyzed.
var ErrNoSourceFiles = errors.New("no source files found")

type AnalyzeFilesRequest struct {
	RootPath string
	// Paths are files or directories to analyze; empty means RootPath.
	Paths      []string
	IncludeExt []string
	// ChangedOnly restricts the run to files git reports as changed.
	ChangedOnly bool
	// SkipSnapshot leaves the saved report of RootPath untouched.
	SkipSnapshot bool
	Locale       string
}

type AnalyzeFilesUseCase struct {
	scanner  ports.SourceFileScanner
	reader   ports.FileReader
	parsers  []ports.SyntaxParser
	analyzer ports.FileAnalyzer
	changes  ports.ChangedFilesLister
	storage  ports.ReportStorage
	workers  int
	logger   *slog.Logger
	now      func() time.Time
}

func NewAnalyzeFilesUseCase(
	scanner ports.SourceFileScanner,
	reader ports.FileReader,
	parsers []ports.SyntaxParser,
	analyzer ports.FileAnalyzer,
	changes ports.ChangedFilesLister,
	storage ports.ReportStorage,
	workers int,
	logger *slog.Logger,
) *AnalyzeFilesUseCase {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeFilesUseCase{
		scanner:  scanner,
		reader:   reader,
		parsers:  parsers,
		analyzer: analyzer,
		changes:  changes,
		storage:  storage,
		workers:  workers,
		logger:   logger,
		now:      time.Now,
	}
}

// Execute analyzes every selected file. Files that cannot be read or parsed
// become report warnings; results are ordered by path.
func (uc *AnalyzeFilesUseCase) Execute(ctx context.Context, req AnalyzeFilesRequest) (*model.Report, error) {
	if req.RootPath == "" {
		return nil, fmt.Errorf("root path is required")
	}

	files, err := uc.selectFiles(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSourceFiles, req.RootPath)
	}
	uc.logger.Debug("analyzing", "files", len(files), "workers", uc.workers)

	results := make([]*model.AnalysisResult, len(files))
	failures := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := uc.analyzeFile(gctx, path)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				uc.logger.Warn("skipping file", "path", path, "error", err)
				failures[i] = err
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &model.Report{
		RootPath:    req.RootPath,
		GeneratedAt: uc.now().UTC(),
		Locale:      req.Locale,
		Results:     make([]model.AnalysisResult, 0, len(files)),
	}
	for i := range files {
		if results[i] != nil {
			report.Results = append(report.Results, *results[i])
		}
		if failures[i] != nil {
			report.Warnings = append(report.Warnings, failures[i].Error())
		}
	}

	if !req.SkipSnapshot && uc.storage != nil {
		if err := uc.storage.Save(ctx, req.RootPath, report); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
	}
	return report, nil
}

func (uc *AnalyzeFilesUseCase) selectFiles(ctx context.Context, req AnalyzeFilesRequest) ([]string, error) {
	var candidates []string
	if req.ChangedOnly {
		if uc.changes == nil {
			return nil, fmt.Errorf("changed files are not available")
		}
		changed, err := uc.changes.ChangedFiles(ctx, req.RootPath)
		if err != nil {
			return nil, fmt.Errorf("list changed files: %w", err)
		}
		exts := extSet(req.IncludeExt)
		for _, path := range changed {
			if len(exts) > 0 {
				if _, ok := exts[strings.ToLower(filepath.Ext(path))]; !ok {
					continue
				}
			}
			candidates = append(candidates, path)
		}
	} else {
		paths := req.Paths
		if len(paths) == 0 {
			paths = []string{req.RootPath}
		}
		for _, p := range paths {
			found, err := uc.scanner.Scan(ctx, p, req.IncludeExt)
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", p, err)
			}
			candidates = append(candidates, found...)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	files := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		if uc.selectParser(path) == nil {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func (uc *AnalyzeFilesUseCase) analyzeFile(ctx context.Context, path string) (model.AnalysisResult, error) {
	src, err := uc.reader.ReadFile(path)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	parser := uc.selectParser(path)
	root, err := parser.Parse(ctx, path, src)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	return uc.analyzer.Analyze(root, path), nil
}

func (uc *AnalyzeFilesUseCase) selectParser(path string) ports.SyntaxParser {
	for _, p := range uc.parsers {
		if p.SupportsFile(path) {
			return p
		}
	}
	return nil
}

func extSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}
