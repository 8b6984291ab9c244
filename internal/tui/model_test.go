// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/palette/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTasks() []tasks.Task {
	return []tasks.Task{
		{Name: "Save", Detail: "Write the current buffer"},
		{Name: "Save All", Detail: "Write every modified buffer"},
		{Name: "Quit", Detail: "Close the editor"},
		{Name: "Open File", Detail: "Pick a file to edit"},
	}
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func names(ms []tasks.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}

	return out
}

func TestNewModel(t *testing.T) {
	m := NewModel(context.Background(), testTasks())

	require.NotNil(t, m)
	assert.Empty(t, m.Query())
	assert.Equal(t, []string{"Save", "Save All", "Quit", "Open File"}, names(m.Matches()))
	assert.False(t, m.Cancelled())

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_Filtering(t *testing.T) {
	m := NewModel(context.Background(), testTasks())

	typeText(m, "sav")
	assert.Equal(t, "sav", m.Query())
	assert.Equal(t, []string{"Save", "Save All"}, names(m.Matches()))

	typeText(m, "e a")
	assert.Equal(t, []string{"Save All"}, names(m.Matches()))

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "sav", m.Query())
	assert.Len(t, m.Matches(), 2)
}

func TestModel_Navigation(t *testing.T) {
	m := NewModel(context.Background(), testTasks())

	tests := []struct {
		key    tea.KeyMsg
		cursor int
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, 2},
		{tea.KeyMsg{Type: tea.KeyTab}, 3},
		{tea.KeyMsg{Type: tea.KeyDown}, 0},
		{tea.KeyMsg{Type: tea.KeyUp}, 3},
		{tea.KeyMsg{Type: tea.KeyCtrlP}, 2},
	}

	for _, tt := range tests {
		m.Update(tt.key)
		assert.Equal(t, tt.cursor, m.cursor, "after %s", tt.key.String())
	}

	typeText(m, "q")
	assert.Equal(t, 0, m.cursor, "filtering resets the cursor")
}

func TestModel_Select(t *testing.T) {
	m := NewModel(context.Background(), testTasks())

	typeText(m, "save")
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Save All", got.Name)
	assert.False(t, m.Cancelled())
	assert.Empty(t, m.View())
}

func TestModel_SelectWithoutMatches(t *testing.T) {
	m := NewModel(context.Background(), testTasks())

	typeText(m, "zzz")
	assert.Empty(t, m.Matches())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No matching commands")
}

func TestModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(key.String(), func(t *testing.T) {
			m := NewModel(context.Background(), testTasks())

			_, cmd := m.Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Cancelled())

			_, ok := m.Selected()
			assert.False(t, ok)
		})
	}
}

func TestModel_Scrolling(t *testing.T) {
	ts := make([]tasks.Task, 0, 20)
	for i := range 20 {
		ts = append(ts, tasks.Task{Name: fmt.Sprintf("Command %02d", i)})
	}

	m := NewModel(context.Background(), ts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: reservedLines + 5})

	assert.Equal(t, 5, m.visibleItems())

	for range 7 {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	assert.Equal(t, 7, m.cursor)
	assert.Equal(t, 3, m.offset)

	view := m.View()
	assert.Contains(t, view, "Command 07")
	assert.NotContains(t, view, "Command 02")
	assert.NotContains(t, view, "Command 08")

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, 2, m.offset)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 19, m.cursor, "wraps to the last entry")
	assert.Equal(t, 15, m.offset)
}

func TestModel_View(t *testing.T) {
	m := NewModel(context.Background(), testTasks())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, "Command Palette")
	assert.Contains(t, view, "Save")
	assert.Contains(t, view, "Close the editor")
	assert.Contains(t, view, "4/4")
	assert.Contains(t, view, "esc to cancel")

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 24})
	assert.Contains(t, m.View(), ellipsis)
}

func TestModel_ViewTruncatesByCells(t *testing.T) {
	m := NewModel(context.Background(), []tasks.Task{
		{Name: "Öffnen: Zuletzt geöffnete Dateien", Detail: "Wählt eine Datei aus dem Verlauf"},
		{Name: "保存", Detail: "現在のバッファを書き込む"},
	})
	m.Update(tea.WindowSizeMsg{Width: 16, Height: 24})

	view := m.View()
	require.True(t, utf8.ValidString(view))

	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Öffnen") || strings.Contains(line, "保存") {
			assert.LessOrEqual(t, lipgloss.Width(line), 16, line)
		}
	}

	assert.Contains(t, view, "Öffnen: Zul"+ellipsis)
	assert.Contains(t, view, "保存")
}
