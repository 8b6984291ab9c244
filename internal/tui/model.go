// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/palette/internal/tasks"
)

const (
	inputCharLimit = 120
	minInputWidth  = 20
	// title, input, blank line, status and help.
	reservedLines = 6
	// used before the first WindowSizeMsg arrives.
	defaultVisibleItems = 10
)

// Model is the palette state.
type Model struct {
	ctx     context.Context
	input   textinput.Model
	tasks   []tasks.Task
	matches []tasks.Match

	cursor int // index into matches
	offset int // first visible match

	width  int
	height int

	selected  *tasks.Task
	cancelled bool

	styles *Styles
}

// Styles contains all the styling for the palette.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Detail   lipgloss.Style
	Empty    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles creates the default styling for the palette.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}

// NewModel creates a palette over ts, in the order given.
func NewModel(ctx context.Context, ts []tasks.Task) *Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type to filter commands..."
	ti.Prompt = "> "
	ti.CharLimit = inputCharLimit
	ti.PromptStyle = styles.Prompt
	ti.Focus()

	m := &Model{
		ctx:    ctx,
		input:  ti,
		tasks:  ts,
		styles: styles,
	}

	m.refilter()

	return m
}

// Selected returns the chosen task, if the user picked one.
func (m *Model) Selected() (tasks.Task, bool) {
	if m.selected == nil {
		return tasks.Task{}, false
	}

	return *m.selected, true
}

// Cancelled reports whether the user dismissed the palette.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Query returns the current filter text.
func (m *Model) Query() string {
	return m.input.Value()
}

// Matches returns the tasks currently shown, best first.
func (m *Model) Matches() []tasks.Match {
	return m.matches
}

// refilter recomputes the matches and moves the cursor back to the top.
func (m *Model) refilter() {
	m.matches = tasks.Filter(m.tasks, m.input.Value())
	m.cursor = 0
	m.offset = 0
}

// visibleItems returns how many matches fit on screen.
func (m *Model) visibleItems() int {
	if m.height == 0 {
		return defaultVisibleItems
	}

	if m.height <= reservedLines {
		return 1
	}

	return m.height - reservedLines
}

// move shifts the cursor by delta, wrapping at both ends.
func (m *Model) move(delta int) {
	n := len(m.matches)
	if n == 0 {
		return
	}

	m.cursor = ((m.cursor+delta)%n + n) % n
	m.scrollToCursor()
}

// scrollToCursor keeps the cursor inside the visible window.
func (m *Model) scrollToCursor() {
	visible := m.visibleItems()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}

	maxOffset := max(0, len(m.matches)-visible)
	m.offset = min(max(m.offset, 0), maxOffset)
}
