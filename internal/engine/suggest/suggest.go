// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package suggest turns an analysis result into ordered remediation hints.
package suggest

import (
	"sort"
	"strconv"

	"golang.org/x/text/message"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/i18n"
)

const (
	MinHotspotLimit     = 3
	MaxHotspotLimit     = 5
	DefaultHotspotLimit = MaxHotspotLimit
)

type Options struct {
	// HotspotLimit caps hotspot suggestions; clamped to [3, 5], 0 means 5.
	HotspotLimit int
	Printer      *message.Printer
}

// ClampHotspotLimit maps any requested limit into the supported range.
func ClampHotspotLimit(n int) int {
	switch {
	case n == 0:
		return DefaultHotspotLimit
	case n < MinHotspotLimit:
		return MinHotspotLimit
	case n > MaxHotspotLimit:
		return MaxHotspotLimit
	}
	return n
}

var fixFor = map[model.RuleID]string{
	model.RuleLooseEquality:   i18n.MsgFixLooseEquality,
	model.RuleParameterAsFlag: i18n.MsgFixParameterFlag,
	model.RuleMagicNumber:     i18n.MsgFixMagicNumber,
	model.RuleMaxParameters:   i18n.MsgFixMaxParameters,
}

// Generate builds the suggestions for res. res is not modified.
func Generate(res model.AnalysisResult, opts Options) []string {
	p := opts.Printer
	if p == nil {
		p = i18n.NewPrinter("")
	}
	g := generator{p: p, path: res.FilePath}

	hotspotsEmitted := g.hotspots(res.Hotspots, ClampHotspotLimit(opts.HotspotLimit))
	if !hotspotsEmitted && res.MaxNesting >= model.DeepNestingWarning {
		g.add(i18n.MsgDeepNesting, res.MaxNesting)
	}
	for _, lf := range res.LongFunctions {
		g.add(i18n.MsgLongFunction, lf.Name, lf.Length,
			strconv.Itoa(lf.StartLine), strconv.Itoa(lf.EndLine), model.MaxFunctionLines)
	}
	if res.Cognitive > model.CognitiveWarning && !hotspotsEmitted {
		g.add(i18n.MsgSplitLogic, res.Cognitive)
	}
	g.violations(res.Violations)

	if len(g.out) == 0 {
		g.add(i18n.MsgCleanCode)
	}
	return g.out
}

type generator struct {
	p    *message.Printer
	path string
	out  []string
}

func (g *generator) add(key string, args ...any) {
	g.out = append(g.out, g.p.Sprintf(key, args...))
}

func (g *generator) location(line int) string {
	if g.path != "" {
		return g.path + ":" + strconv.Itoa(line)
	}
	return g.p.Sprintf(i18n.MsgLineRef, strconv.Itoa(line))
}

func (g *generator) hotspots(hs []model.Hotspot, limit int) bool {
	if len(hs) == 0 {
		return false
	}
	sorted := append([]model.Hotspot(nil), hs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Nesting > sorted[j].Nesting
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	for _, h := range sorted {
		loc := g.location(h.Line)
		if h.Function != "" {
			g.add(i18n.MsgHotspotInFunction, h.Kind.String(), h.Function, loc, h.Nesting)
		} else {
			g.add(i18n.MsgHotspotTopLevel, h.Kind.String(), loc, h.Nesting)
		}
	}
	return true
}

// violations emits one aggregated hint per rule, in first-appearance order.
func (g *generator) violations(vs []model.Violation) {
	var order []model.RuleID
	counts := make(map[model.RuleID]int)
	for _, v := range vs {
		if counts[v.Rule] == 0 {
			order = append(order, v.Rule)
		}
		counts[v.Rule]++
	}
	for _, id := range order {
		key, ok := fixFor[id]
		if !ok {
			continue
		}
		if id == model.RuleMaxParameters {
			g.add(key, counts[id], model.MaxParameters)
			continue
		}
		g.add(key, counts[id])
	}
}
