// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

type WatchFilesRequest struct {
	AnalyzeFilesRequest
	// Formats are rendered in order for every batch, e.g. "status", "text".
	Formats []string
}

type WatchFilesUseCase struct {
	watcher ports.ChangeWatcher
	analyze *AnalyzeFilesUseCase
	render  *GenerateReportUseCase
	out     io.Writer
	logger  *slog.Logger
}

func NewWatchFilesUseCase(
	watcher ports.ChangeWatcher,
	analyze *AnalyzeFilesUseCase,
	render *GenerateReportUseCase,
	out io.Writer,
	logger *slog.Logger,
) *WatchFilesUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &WatchFilesUseCase{
		watcher: watcher,
		analyze: analyze,
		render:  render,
		out:     out,
		logger:  logger,
	}
}

// Execute re-analyzes each batch of saved files until ctx is done. A batch
// that fails is logged and the watch goes on.
func (uc *WatchFilesUseCase) Execute(ctx context.Context, req WatchFilesRequest) error {
	roots := req.Paths
	if len(roots) == 0 {
		roots = []string{req.RootPath}
	}
	formats := req.Formats
	if len(formats) == 0 {
		formats = []string{"status"}
	}

	uc.logger.Info("watching for changes", "roots", roots)
	return uc.watcher.Watch(ctx, roots, func(paths []string) {
		if err := uc.runBatch(ctx, req.AnalyzeFilesRequest, formats, paths); err != nil {
			uc.logger.Warn("analysis failed", "error", err)
		}
	})
}

func (uc *WatchFilesUseCase) runBatch(ctx context.Context, base AnalyzeFilesRequest, formats, paths []string) error {
	req := base
	req.Paths = paths
	req.ChangedOnly = false
	req.SkipSnapshot = true

	report, err := uc.analyze.Execute(ctx, req)
	if errors.Is(err, ErrNoSourceFiles) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, format := range formats {
		out, err := uc.render.Render(report, format)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(uc.out, out); err != nil {
			return fmt.Errorf("write %s output: %w", format, err)
		}
	}
	return nil
}
