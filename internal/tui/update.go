// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/matt-FFFFFF/palette/internal/ctxlog"
)

const (
	minStatusBarAvailableHeight = 8
	ellipsis                    = "..."
	cursorMarker                = "> "
	detailSeparator             = "  "
)

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKeyPress(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(minInputWidth, msg.Width-len(m.input.Prompt)-1)
		m.scrollToCursor()

		return m, nil
	}

	previous := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != previous {
		m.refilter()
		ctxlog.Debug(m.ctx, "palette filter changed", "query", m.input.Value(), "matches", len(m.matches))
	}

	return m, cmd
}

// handleKeyPress processes navigation and selection keys. Everything else
// falls through to the text input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit, true

	case "enter":
		if len(m.matches) == 0 {
			return m, nil, true
		}

		t := m.matches[m.cursor].Task
		m.selected = &t

		return m, tea.Quit, true

	case "up", "ctrl+p", "shift+tab":
		m.move(-1)
		return m, nil, true

	case "down", "ctrl+n", "tab":
		m.move(1)
		return m, nil, true

	case "pgup":
		m.move(-m.visibleItems())
		return m, nil, true

	case "pgdown":
		m.move(m.visibleItems())
		return m, nil, true
	}

	return m, nil, false
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.selected != nil || m.cancelled {
		return ""
	}

	var view strings.Builder

	view.WriteString(m.styles.Title.Render("Command Palette"))
	view.WriteString("\n")
	view.WriteString(m.input.View())
	view.WriteString("\n\n")

	if len(m.matches) == 0 {
		view.WriteString(m.styles.Empty.Render("No matching commands"))
		view.WriteString("\n")
	}

	end := min(len(m.matches), m.offset+m.visibleItems())
	for i := m.offset; i < end; i++ {
		m.renderMatch(&view, i)
	}

	if m.height == 0 || m.height > minStatusBarAvailableHeight {
		view.WriteString(m.styles.Status.Render(fmt.Sprintf("%d/%d", len(m.matches), len(m.tasks))))
		view.WriteString("\n")
		view.WriteString(m.styles.Help.Render("↑/↓ to move, enter to run, esc to cancel"))
	}

	return view.String()
}

// renderMatch renders a single line: cursor, name and the detail, truncated
// to the window width by display cells.
func (m *Model) renderMatch(b *strings.Builder, i int) {
	match := m.matches[i]

	name := match.Name
	detail := ""

	if match.Detail != "" {
		detail = detailSeparator + match.Detail
	}

	if avail := m.width - len(cursorMarker); m.width > 0 && avail > 0 {
		nameWidth := lipgloss.Width(name)

		switch {
		case nameWidth > avail:
			name = ansi.Truncate(name, avail, ellipsis)
			detail = ""
		case nameWidth == avail:
			detail = ""
		case nameWidth+lipgloss.Width(detail) > avail:
			detail = ansi.Truncate(detail, avail-nameWidth, ellipsis)
		}
	}

	if i == m.cursor {
		b.WriteString(m.styles.Selected.Render(cursorMarker + name))
	} else {
		b.WriteString(strings.Repeat(" ", len(cursorMarker)) + m.styles.Item.Render(name))
	}

	if detail != "" {
		b.WriteString(m.styles.Detail.Render(detail))
	}

	b.WriteString("\n")
}
