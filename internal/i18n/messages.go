// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package i18n holds the user-facing message catalog. Message keys are the
// English format strings; other locales register translations for them.
package i18n

const (
	MsgLooseEquality     = "Replace '%s' with '%s'"
	MsgParameterFlag     = "Do not branch on parameter '%s' as a flag"
	MsgMagicNumber       = "Replace magic number '%s' with a named constant"
	MsgMaxParameters     = "Function '%s' has %d parameters (max %d)"
	MsgAnonymousFunction = "anonymous function"

	MsgRankS = "Perfect - clean and easy to understand"
	MsgRankA = "Excellent - readable and maintainable"
	MsgRankB = "Good - some room for improvement"
	MsgRankC = "Caution - complexity or style needs attention"
	MsgRankD = "Poor - refactoring recommended"
	MsgRankF = "Critical - refactoring required"

	MsgLineRef           = "line %s"
	MsgHotspotInFunction = "%s in function '%s' at %s is nested %d levels deep; flatten it with early returns or guard clauses"
	MsgHotspotTopLevel   = "%s at %s is nested %d levels deep; flatten it with early returns or guard clauses"
	MsgDeepNesting       = "Nesting depth is %d; reduce it with early returns or by extracting functions"
	MsgLongFunction      = "Function '%s' is %d lines long (%s-%s); split it into smaller units of at most %d lines"
	MsgSplitLogic        = "Cognitive complexity is %d; split the logic into smaller functions"
	MsgFixLooseEquality  = "Loose equality is used in %d place(s); change them to '===' / '!=='"
	MsgFixParameterFlag  = "%d if-statement(s) branch on a parameter flag; split the function or use a strategy object"
	MsgFixMagicNumber    = "Found %d magic number(s); declare them as named constants"
	MsgFixMaxParameters  = "%d function(s) take more than %d parameters; group them into an object"
	MsgCleanCode         = "The code is clean!"
)

var korean = map[string]string{
	MsgLooseEquality:     "'%s' 대신 '%s'를 사용하세요",
	MsgParameterFlag:     "파라미터 '%s'를 조건문 플래그로 직접 사용하지 마세요",
	MsgMagicNumber:       "매직 넘버 '%s' 대신 상수를 사용하세요",
	MsgMaxParameters:     "함수 '%s'의 파라미터가 %d개입니다 (최대 %d개)",
	MsgAnonymousFunction: "익명 함수",

	MsgRankS: "완벽 - 클린하고 이해하기 쉬운 코드",
	MsgRankA: "우수 - 가독성과 유지보수성이 높은 코드",
	MsgRankB: "양호 - 약간의 개선 여지가 있는 코드",
	MsgRankC: "주의 - 복잡도 또는 코드 스타일 개선 필요",
	MsgRankD: "나쁨 - 즉시 리팩토링 권장",
	MsgRankF: "위험 - 긴급 리팩토링 필수",

	MsgLineRef:           "%s번째 줄",
	MsgHotspotInFunction: "%s (%s 함수, %s) - 중첩 레벨 %d: Early return 패턴이나 Guard Clause로 개선하세요",
	MsgHotspotTopLevel:   "%s (%s) - 중첩 레벨 %d: Early return 패턴이나 Guard Clause로 개선하세요",
	MsgDeepNesting:       "중첩 깊이가 %d입니다. Early return 패턴이나 함수 분리로 줄여주세요.",
	MsgLongFunction:      "함수 '%s'가 %d줄입니다 (%s-%s). %d줄 이하의 작은 단위로 분리하세요.",
	MsgSplitLogic:        "인지 복잡도가 %d입니다. 로직을 작은 함수로 분리하여 가독성을 높여주세요.",
	MsgFixLooseEquality:  "'==' 연산자를 %d곳에서 사용 중입니다. 모두 '==='로 변경해주세요.",
	MsgFixParameterFlag:  "%d곳에서 파라미터 플래그를 사용 중입니다. 함수를 분리하거나 전략 패턴을 고려해주세요.",
	MsgFixMagicNumber:    "매직 넘버가 %d개 발견되었습니다. 의미 있는 상수명으로 선언해주세요.",
	MsgFixMaxParameters:  "%d개 함수의 파라미터가 %d개를 초과합니다. 객체로 그룹화 해주세요.",
	MsgCleanCode:         "코드가 깔끔합니다!",
}
