// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package usecase

import (
	"context"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
)

type Catalog struct {
	Metrics []model.MetricSummary `json:"metrics"`
	Rules   []model.RuleSummary   `json:"rules"`
}

type ListRulesUseCase struct{}

func NewListRulesUseCase() *ListRulesUseCase {
	return &ListRulesUseCase{}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context) Catalog {
	_ = ctx
	return Catalog{
		Metrics: model.AllMetricSummaries(),
		Rules:   model.AllRuleSummaries(),
	}
}
