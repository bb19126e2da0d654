// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

import "github.com/rafaelvolkmer/stylerank/internal/domain/syntax"

type MetricID string

const (
	MetricCyclomatic     MetricID = "complexity.cyclomatic"
	MetricCognitive      MetricID = "complexity.cognitive"
	MetricMaxNesting     MetricID = "complexity.max_nesting"
	MetricLengthPenalty  MetricID = "size.length_penalty"
	MetricCompositeScore MetricID = "score.composite"
	MetricHotspots       MetricID = "complexity.hotspots"
	MetricLongFunctions  MetricID = "size.long_functions"
)

// Thresholds shared by the calculators, the rules and the suggestions.
const (
	MaxFunctionLines    = 30
	LinesPerPenaltyStep = 10
	MaxParameters       = 5
	HotspotNesting      = 2
	DeepNestingWarning  = 3
	CognitiveWarning    = 10
	LengthPenaltyWeight = 0.5
)

// Hotspot is a branch or loop found at nesting level HotspotNesting or deeper.
type Hotspot struct {
	Kind     syntax.Kind `json:"kind" yaml:"kind"`
	Line     int         `json:"line" yaml:"line"`
	Nesting  int         `json:"nesting" yaml:"nesting"`
	Function string      `json:"function,omitempty" yaml:"function,omitempty"`
}

type LongFunction struct {
	Name      string `json:"name" yaml:"name"`
	StartLine int    `json:"startLine" yaml:"startLine"`
	EndLine   int    `json:"endLine" yaml:"endLine"`
	Length    int    `json:"length" yaml:"length"`
}

// MetricsBundle holds every complexity measure of one file.
type MetricsBundle struct {
	Cyclomatic     int            `json:"cyclomatic" yaml:"cyclomatic"`
	Cognitive      int            `json:"cognitive" yaml:"cognitive"`
	MaxNesting     int            `json:"maxNesting" yaml:"maxNesting"`
	LengthPenalty  int            `json:"lengthPenalty" yaml:"lengthPenalty"`
	CompositeScore float64        `json:"compositeScore" yaml:"compositeScore"`
	Hotspots       []Hotspot      `json:"hotspots" yaml:"hotspots"`
	LongFunctions  []LongFunction `json:"longFunctions" yaml:"longFunctions"`
}

// CompositeScoreOf is cognitive + 0.5 * length penalty.
func CompositeScoreOf(cognitive, lengthPenalty int) float64 {
	return float64(cognitive) + LengthPenaltyWeight*float64(lengthPenalty)
}

type MetricSummary struct {
	ID          MetricID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Group       string   `json:"group"`
}

func AllMetricSummaries() []MetricSummary {
	return []MetricSummary{
		{
			ID:          MetricCyclomatic,
			Name:        "Cyclomatic Complexity",
			Description: "1 plus one per if, ternary, &&/||, non-default case, for, while and catch.",
			Group:       "complexity",
		},
		{
			ID:          MetricCognitive,
			Name:        "Cognitive Complexity",
			Description: "Nesting-weighted branch and loop count; early returns and boolean operators add a flat 1.",
			Group:       "complexity",
		},
		{
			ID:          MetricMaxNesting,
			Name:        "Max Nesting Depth",
			Description: "Deepest if/loop nesting inside any single function.",
			Group:       "complexity",
		},
		{
			ID:          MetricHotspots,
			Name:        "Complexity Hotspots",
			Description: "Branches and loops found at nesting level 2 or deeper.",
			Group:       "complexity",
		},
		{
			ID:          MetricLengthPenalty,
			Name:        "Length Penalty",
			Description: "floor((lines - 30) / 10) for the longest function over 30 lines; markup-rendering functions are exempt.",
			Group:       "size",
		},
		{
			ID:          MetricLongFunctions,
			Name:        "Long Functions",
			Description: "Functions longer than 30 lines.",
			Group:       "size",
		},
		{
			ID:          MetricCompositeScore,
			Name:        "Composite Score",
			Description: "Cognitive complexity + 0.5 * length penalty; input to the rank.",
			Group:       "score",
		},
	}
}
