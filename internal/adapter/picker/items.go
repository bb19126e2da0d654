// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
)

// item is one jumpable location in the pick list.
type item struct {
	title, desc string
	file        string
	line        int
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + " " + i.desc }

// itemsFor lists violations, hotspots and long functions of every file, in
// report order. Entries without a file are skipped; there is nowhere to jump.
func itemsFor(report *model.Report) []list.Item {
	var out []list.Item
	for _, res := range report.Results {
		if res.FilePath == "" {
			continue
		}
		for _, v := range res.Violations {
			out = append(out, item{
				title: fmt.Sprintf("[%s] %s", res.Rank, v.Message),
				desc:  location(res.FilePath, v.Line) + "  " + string(v.Rule),
				file:  res.FilePath,
				line:  v.Line,
			})
		}
		for _, h := range res.Hotspots {
			title := fmt.Sprintf("[%s] %s nested %d levels", res.Rank, h.Kind, h.Nesting)
			if h.Function != "" {
				title += " in " + h.Function
			}
			out = append(out, item{
				title: title,
				desc:  location(res.FilePath, h.Line) + "  " + string(model.MetricHotspots),
				file:  res.FilePath,
				line:  h.Line,
			})
		}
		for _, lf := range res.LongFunctions {
			out = append(out, item{
				title: fmt.Sprintf("[%s] %s is %d lines long", res.Rank, lf.Name, lf.Length),
				desc:  location(res.FilePath, lf.StartLine) + "  " + string(model.MetricLongFunctions),
				file:  res.FilePath,
				line:  lf.StartLine,
			})
		}
	}
	return out
}

func location(file string, line int) string {
	if line <= 0 {
		return file
	}
	return fmt.Sprintf("%s:%d", file, line)
}
