// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package model

type RuleID string

const (
	RuleLooseEquality   RuleID = "loose-equality"
	RuleParameterAsFlag RuleID = "parameter-as-flag"
	RuleMagicNumber     RuleID = "magic-number"
	RuleMaxParameters   RuleID = "max-parameters"
)

// Violation is one finding of a style rule. Line is 0 when unknown.
type Violation struct {
	Rule    RuleID `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
}

type RuleSummary struct {
	ID          RuleID `json:"id"`
	Description string `json:"description"`
}

// AllRuleSummaries lists the rules in catalog order.
func AllRuleSummaries() []RuleSummary {
	return []RuleSummary{
		{ID: RuleLooseEquality, Description: "Loose equality (== / !=) where a strict comparison (=== / !==) is meant."},
		{ID: RuleParameterAsFlag, Description: "An if-statement branching directly on a function parameter (boolean flag argument)."},
		{ID: RuleMagicNumber, Description: "Numeric literals other than 0, 1 and -1 outside member access, array elements and object property values."},
		{ID: RuleMaxParameters, Description: "Functions declaring more than 5 parameters."},
	}
}
