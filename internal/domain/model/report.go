// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import "time"

// AnalysisResult is everything derived from one file's syntax tree. It holds
// no timestamps so that analyzing the same tree twice yields equal values.
type AnalysisResult struct {
	FilePath      string `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	MetricsBundle `yaml:",inline"`

	Violations      []Violation `json:"violations" yaml:"violations"`
	ViolationCount  int         `json:"violationCount" yaml:"violationCount"`
	Rank            Rank        `json:"rank" yaml:"rank"`
	RankDescription string      `json:"rankDescription" yaml:"rankDescription"`
	Suggestions     []string    `json:"suggestions" yaml:"suggestions"`
}

// Report is the envelope handed to renderers and saved between runs.
type Report struct {
	RootPath    string           `json:"rootPath" yaml:"rootPath"`
	GeneratedAt time.Time        `json:"generatedAt" yaml:"generatedAt"`
	Locale      string           `json:"locale,omitempty" yaml:"locale,omitempty"`
	Results     []AnalysisResult `json:"results" yaml:"results"`
	Warnings    []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Worst returns the worst rank in the report, or RankS when it is empty.
func (r *Report) Worst() Rank {
	worst := RankS
	for _, res := range r.Results {
		if worst.Better(res.Rank) {
			worst = res.Rank
		}
	}
	return worst
}
