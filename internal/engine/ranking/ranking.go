// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package ranking grades a composite score and violation count.
package ranking

import (
	"golang.org/x/text/message"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/i18n"
)

type threshold struct {
	rank          model.Rank
	maxScore      float64
	maxViolations int
	either        bool
}

// Checked top to bottom; the first match wins. D accepts either bound.
var thresholds = []threshold{
	{rank: model.RankS, maxScore: 5, maxViolations: 0},
	{rank: model.RankA, maxScore: 10, maxViolations: 1},
	{rank: model.RankB, maxScore: 20, maxViolations: 3},
	{rank: model.RankC, maxScore: 30, maxViolations: 5},
	{rank: model.RankD, maxScore: 40, maxViolations: 8, either: true},
}

var descriptions = map[model.Rank]string{
	model.RankS: i18n.MsgRankS,
	model.RankA: i18n.MsgRankA,
	model.RankB: i18n.MsgRankB,
	model.RankC: i18n.MsgRankC,
	model.RankD: i18n.MsgRankD,
	model.RankF: i18n.MsgRankF,
}

// Assign returns the best rank whose bounds admit score and violations.
func Assign(score float64, violations int) model.Rank {
	for _, t := range thresholds {
		scoreOK := score <= t.maxScore
		countOK := violations <= t.maxViolations
		if (t.either && (scoreOK || countOK)) || (scoreOK && countOK) {
			return t.rank
		}
	}
	return model.RankF
}

// Describe returns the localized description of r.
func Describe(r model.Rank, p *message.Printer) string {
	key, ok := descriptions[r]
	if !ok {
		return ""
	}
	if p == nil {
		p = i18n.NewPrinter("")
	}
	return p.Sprintf(key)
}
