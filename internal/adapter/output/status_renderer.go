// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"strings"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

// StatusRenderer prints one compact status line per file.
type StatusRenderer struct{}

func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

var _ ports.OutputRenderer = (*StatusRenderer)(nil)

func (r *StatusRenderer) Format() string {
	return "status"
}

func (r *StatusRenderer) Render(report *model.Report) (string, error) {
	var b strings.Builder
	for i := range report.Results {
		b.WriteString(StatusLine(&report.Results[i]))
		b.WriteString("\n")
	}
	if len(report.Results) > 1 {
		b.WriteString(statusSummary(report))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// StatusLine formats res as "Rank X | score N | violations N | path".
func StatusLine(res *model.AnalysisResult) string {
	parts := []string{
		label("Rank") + " " + rankBadge(res.Rank),
		label("score") + " " + colorScore(res.CompositeScore),
		label("violations") + " " + colorCount(res.ViolationCount, 1, 6),
	}
	if res.FilePath != "" {
		parts = append(parts, fileStyle.Render(res.FilePath))
	}
	return strings.Join(parts, label(" | "))
}

// statusSummary closes multi-file output with the worst rank.
func statusSummary(report *model.Report) string {
	return fmt.Sprintf("%s %s %s", label("Worst"), rankBadge(report.Worst()), label(fmt.Sprintf("(%d files)", len(report.Results))))
}
