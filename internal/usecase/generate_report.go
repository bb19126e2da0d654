// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

const DefaultFormat = "text"

type GenerateReportRequest struct {
	RootPath string
	Format   string
}

type GenerateReportUseCase struct {
	storage  ports.ReportStorage
	registry ports.RendererRegistry
}

func NewGenerateReportUseCase(storage ports.ReportStorage, registry ports.RendererRegistry) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		storage:  storage,
		registry: registry,
	}
}

// Execute renders the last saved report of RootPath.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, req GenerateReportRequest) (string, error) {
	report, err := uc.storage.Load(ctx, req.RootPath)
	if err != nil {
		return "", err
	}
	return uc.Render(report, req.Format)
}

// Render formats report without touching storage.
func (uc *GenerateReportUseCase) Render(report *model.Report, format string) (string, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = DefaultFormat
	}

	renderer, ok := uc.registry.Get(format)
	if !ok {
		return "", fmt.Errorf("unknown format %q", format)
	}
	return renderer.Render(report)
}
