// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package ports

import (
	"context"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/syntax"
)

type SourceFileScanner interface {
	Scan(ctx context.Context, root string, includeExt []string) ([]string, error)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type SyntaxParser interface {
	Name() string
	SupportsFile(path string) bool
	Parse(ctx context.Context, path string, src []byte) (*syntax.Node, error)
}

type FileAnalyzer interface {
	Analyze(root *syntax.Node, path string) model.AnalysisResult
}

type ChangedFilesLister interface {
	ChangedFiles(ctx context.Context, root string) ([]string, error)
}

type ReportStorage interface {
	Save(ctx context.Context, root string, report *model.Report) error
	Load(ctx context.Context, root string) (*model.Report, error)
}

type OutputRenderer interface {
	Format() string
	Render(report *model.Report) (string, error)
}

type RendererRegistry interface {
	Get(format string) (OutputRenderer, bool)
	List() []OutputRenderer
}

// ChangeWatcher calls onChange with the batch of saved paths, one batch at a
// time, until ctx is done.
type ChangeWatcher interface {
	Watch(ctx context.Context, roots []string, onChange func(paths []string)) error
}

type LocationPicker interface {
	Pick(ctx context.Context, report *model.Report) error
}
