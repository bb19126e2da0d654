// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
)

var (
	colMain   = lipgloss.Color("223")
	colMuted  = lipgloss.Color("246")
	colTitle  = lipgloss.Color("142")
	colAccent = lipgloss.Color("208")

	colGood   = lipgloss.Color("108")
	colWarn   = lipgloss.Color("214")
	colDanger = lipgloss.Color("167")

	colFile = lipgloss.Color("67")
	colFunc = lipgloss.Color("150")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colTitle)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(colAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(colMuted)
	valueStyle  = lipgloss.NewStyle().Foreground(colMain)
	warnStyle   = lipgloss.NewStyle().Foreground(colWarn)
	fileStyle   = lipgloss.NewStyle().Bold(true).Foreground(colFile)
	funcStyle   = lipgloss.NewStyle().Foreground(colFunc)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colMuted).
			Padding(0, 1)
)

func title(s string) string  { return titleStyle.Render(s) }
func accent(s string) string { return accentStyle.Render(s) }
func label(s string) string  { return labelStyle.Render(s) }
func value(s string) string  { return valueStyle.Render(s) }

func rankColor(r model.Rank) lipgloss.Color {
	switch {
	case r <= model.RankA:
		return colGood
	case r <= model.RankC:
		return colWarn
	default:
		return colDanger
	}
}

func rankBadge(r model.Rank) string {
	return lipgloss.NewStyle().Bold(true).Foreground(rankColor(r)).Render(r.String())
}

func colorScore(score float64) string {
	s := fmt.Sprintf("%.1f", score)
	switch {
	case score <= 10:
		return lipgloss.NewStyle().Foreground(colGood).Render(s)
	case score <= 30:
		return lipgloss.NewStyle().Foreground(colWarn).Render(s)
	default:
		return lipgloss.NewStyle().Foreground(colDanger).Render(s)
	}
}

func colorCount(n, warnAt, dangerAt int) string {
	s := fmt.Sprintf("%d", n)
	switch {
	case n >= dangerAt:
		return lipgloss.NewStyle().Foreground(colDanger).Render(s)
	case n >= warnAt:
		return lipgloss.NewStyle().Foreground(colWarn).Render(s)
	default:
		return lipgloss.NewStyle().Foreground(colGood).Render(s)
	}
}

func trimPath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	if max <= 1 {
		return path[len(path)-max:]
	}
	return "…" + path[len(path)-max+1:]
}
