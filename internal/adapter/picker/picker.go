// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Package picker shows the findings of a report as a filterable list and
// opens the selected location in the user's editor.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rafaelvolkmer/stylerank/internal/domain/model"
	"github.com/rafaelvolkmer/stylerank/internal/domain/ports"
)

// ErrNothingToPick is returned when the report has no jumpable findings.
var ErrNothingToPick = errors.New("no findings to pick from")

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Italic(true)
)

type jumpResultMsg struct {
	target string
	err    error
}

type pickModel struct {
	list   list.Model
	editor string
	status string
}

func newPickModel(report *model.Report, editor string) pickModel {
	l := list.New(itemsFor(report), list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("StyleRank findings (worst rank %s)", report.Worst())
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	return pickModel{list: l, editor: editor}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.list.FilterState() != list.Filtering {
			if it, ok := m.list.SelectedItem().(item); ok {
				return m, m.jump(it)
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
	case jumpResultMsg:
		if msg.err != nil {
			m.status = statusStyle.Render(fmt.Sprintf("Open failed: %v", msg.err))
		} else {
			m.status = statusStyle.Render("Opened " + msg.target)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	body := m.list.View()
	if m.status != "" {
		body += "\n" + m.status
	}
	return docStyle.Render(body)
}

func (m pickModel) jump(it item) tea.Cmd {
	cmd := editorCommand(m.editor, it.file, it.line)
	target := location(it.file, it.line)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return jumpResultMsg{target: target, err: err}
	})
}

// Picker runs the interactive pick list on the terminal.
type Picker struct {
	editor string
}

// New returns a picker using editor, or $VISUAL / $EDITOR when empty.
func New(editor string) *Picker {
	if editor == "" {
		editor = editorFromEnv()
	}
	return &Picker{editor: editor}
}

var _ ports.LocationPicker = (*Picker)(nil)

func (p *Picker) Pick(ctx context.Context, report *model.Report) error {
	m := newPickModel(report, p.editor)
	if len(m.list.Items()) == 0 {
		return ErrNothingToPick
	}
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run picker: %w", err)
	}
	return nil
}
