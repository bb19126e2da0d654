// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

const (
	sarifSchema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
	sarifVersion = "2.1.0"

	toolName = "stylerank"
)

// ToolVersion is reported in SARIF output; set with -ldflags at build time.
var ToolVersion = "dev"

type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                 `json:"id"`
	ShortDescription sarifMessage           `json:"shortDescription"`
	DefaultConfig    sarifRuleDefaultConfig `json:"defaultConfiguration"`
}

type sarifRuleDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId"`
}

type sarifRegion struct {
	StartLine int `json:"startLine,omitempty"`
	EndLine   int `json:"endLine,omitempty"`
}

// SarifRenderer reports violations as warnings and hotspots and long
// functions as notes.
type SarifRenderer struct{}

func NewSarifRenderer() *SarifRenderer {
	return &SarifRenderer{}
}

var _ ports.OutputRenderer = (*SarifRenderer)(nil)

func (r *SarifRenderer) Format() string {
	return "sarif"
}

func (r *SarifRenderer) Render(report *model.Report) (string, error) {
	results := make([]sarifResult, 0)
	for _, res := range report.Results {
		uri := relativeURI(report.RootPath, res.FilePath)
		for _, v := range res.Violations {
			results = append(results, sarifResult{
				RuleID:    string(v.Rule),
				Level:     "warning",
				Message:   sarifMessage{Text: v.Message},
				Locations: location(uri, v.Line, 0),
			})
		}
		for _, h := range res.Hotspots {
			msg := fmt.Sprintf("%s nested %d levels deep", h.Kind, h.Nesting)
			if h.Function != "" {
				msg += " in " + h.Function
			}
			results = append(results, sarifResult{
				RuleID:    string(model.MetricHotspots),
				Level:     "note",
				Message:   sarifMessage{Text: msg},
				Locations: location(uri, h.Line, 0),
			})
		}
		for _, lf := range res.LongFunctions {
			results = append(results, sarifResult{
				RuleID:    string(model.MetricLongFunctions),
				Level:     "note",
				Message:   sarifMessage{Text: fmt.Sprintf("%s is %d lines long (max %d)", lf.Name, lf.Length, model.MaxFunctionLines)},
				Locations: location(uri, lf.StartLine, lf.EndLine),
			})
		}
	}

	doc := sarifReport{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    toolName,
				Version: ToolVersion,
				Rules:   sarifRules(),
			}},
			Results: results,
		}},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sarif: %w", err)
	}
	return string(data) + "\n", nil
}

func sarifRules() []sarifRule {
	var rules []sarifRule
	for _, r := range model.AllRuleSummaries() {
		rules = append(rules, sarifRule{
			ID:               string(r.ID),
			ShortDescription: sarifMessage{Text: r.Description},
			DefaultConfig:    sarifRuleDefaultConfig{Level: "warning"},
		})
	}
	for _, m := range model.AllMetricSummaries() {
		if m.ID != model.MetricHotspots && m.ID != model.MetricLongFunctions {
			continue
		}
		rules = append(rules, sarifRule{
			ID:               string(m.ID),
			ShortDescription: sarifMessage{Text: m.Description},
			DefaultConfig:    sarifRuleDefaultConfig{Level: "note"},
		})
	}
	return rules
}

func location(uri string, start, end int) []sarifLocation {
	if uri == "" {
		return nil
	}
	loc := sarifLocation{PhysicalLocation: sarifPhysicalLocation{
		ArtifactLocation: sarifArtifactLocation{URI: uri, URIBaseID: "%SRCROOT%"},
	}}
	if start > 0 {
		loc.PhysicalLocation.Region = &sarifRegion{StartLine: start}
		if end > start {
			loc.PhysicalLocation.Region.EndLine = end
		}
	}
	return []sarifLocation{loc}
}

// relativeURI keeps absolute paths out of shared reports.
func relativeURI(root, path string) string {
	if path == "" {
		return ""
	}
	if root != "" && filepath.IsAbs(path) {
		if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
