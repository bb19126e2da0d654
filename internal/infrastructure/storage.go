// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

const (
	reportDir  = ".stylerank"
	reportFile = "report.json"
)

// ErrNoReport is returned by Load when no analysis was saved under root.
var ErrNoReport = errors.New("no saved report; run analyze first")

// FileStorage keeps the most recent report of a root, overwriting the
// previous one.
type FileStorage struct{}

func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

var _ ports.ReportStorage = (*FileStorage)(nil)

// ReportPath returns where the report of root is stored.
func ReportPath(root string) string {
	return filepath.Join(root, reportDir, reportFile)
}

func (s *FileStorage) Save(ctx context.Context, root string, report *model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(root, reportDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	// write then rename so readers never see a half-written report
	f, err := os.CreateTemp(dir, reportFile+".*")
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		f.Close()
		return fmt.Errorf("encode report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp, ReportPath(root)); err != nil {
		return fmt.Errorf("replace report: %w", err)
	}
	return nil
}

func (s *FileStorage) Load(ctx context.Context, root string) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(ReportPath(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", root, ErrNoReport)
		}
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	var report model.Report
	dec := json.NewDecoder(f)
	if err := dec.Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}
