// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

// TextRenderer prints the detailed panel: one bordered block per file.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

var _ ports.OutputRenderer = (*TextRenderer)(nil)

func (r *TextRenderer) Format() string {
	return "text"
}

func (r *TextRenderer) Render(report *model.Report) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", accent("StyleRank Report"))
	fmt.Fprintf(&b, "%s %s\n", label("Root:"), value(report.RootPath))
	fmt.Fprintf(&b, "%s %s\n", label("Generated at:"), value(report.GeneratedAt.Format(time.RFC3339)))
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		label("Files:"), value(fmt.Sprintf("%d", len(report.Results))),
		label("Worst rank:"), rankBadge(report.Worst()),
	)

	for i := range report.Results {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(renderResult(&report.Results[i])))
		b.WriteString("\n")
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title("== Warnings =="))
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "%s %s\n", warnStyle.Render("-"), warnStyle.Render(w))
		}
	}

	return b.String(), nil
}

func renderResult(res *model.AnalysisResult) string {
	var b strings.Builder

	path := res.FilePath
	if path == "" {
		path = "(input)"
	}
	fmt.Fprintf(&b, "%s\n", fileStyle.Render(trimPath(path, 60)))
	fmt.Fprintf(&b, "%s %s  %s\n", label("Rank:"), rankBadge(res.Rank), value(res.RankDescription))
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s  %s %s  %s %s\n",
		label("Score:"), colorScore(res.CompositeScore),
		label("Cognitive:"), colorCount(res.Cognitive, 11, 31),
		label("Cyclomatic:"), colorCount(res.Cyclomatic, 11, 21),
		label("Nesting:"), colorCount(res.MaxNesting, model.DeepNestingWarning, 5),
		label("Length penalty:"), colorCount(res.LengthPenalty, 1, 3),
	)

	if len(res.Violations) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title(fmt.Sprintf("Violations (%d)", res.ViolationCount)))
		for _, v := range res.Violations {
			fmt.Fprintf(&b, "  %s %s %s\n", label(lineRef(v.Line)), warnStyle.Render(string(v.Rule)), v.Message)
		}
	}

	if len(res.Hotspots) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title("Hotspots"))
		for _, h := range res.Hotspots {
			fn := ""
			if h.Function != "" {
				fn = " in " + funcStyle.Render(h.Function)
			}
			fmt.Fprintf(&b, "  %s %s nesting %d%s\n", label(lineRef(h.Line)), h.Kind, h.Nesting, fn)
		}
	}

	if len(res.LongFunctions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title("Long functions"))
		for _, lf := range res.LongFunctions {
			fmt.Fprintf(&b, "  %s %s %d lines\n",
				label(fmt.Sprintf("L%d-%d", lf.StartLine, lf.EndLine)), funcStyle.Render(lf.Name), lf.Length)
		}
	}

	if len(res.Suggestions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", title("Suggestions"))
		for i, s := range res.Suggestions {
			fmt.Fprintf(&b, "  %s %s\n", label(fmt.Sprintf("%d.", i+1)), s)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func lineRef(line int) string {
	if line <= 0 {
		return "L?"
	}
	return fmt.Sprintf("L%d", line)
}
