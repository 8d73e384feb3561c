// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/strengthmeter/core/binder"
	"github.com/toeirei/strengthmeter/internal/i18n"
	"github.com/toeirei/strengthmeter/internal/logging"
)

// confirmFieldName is the name of the confirmation field. It has no meter
// unless the configured field name matches it.
const confirmFieldName = "password2"

// pasteMsg carries clipboard contents read by pasteCmd.
type pasteMsg struct {
	text string
	err  error
}

// Model is the password form. It implements tea.Model and binder.Document.
type Model struct {
	fields    []*passwordField
	checklist []*checklistEntry
	binding   *binder.Binding

	focus  int
	reveal bool
	status string
	width  int

	keys keyMap
	help help.Model
}

var (
	_ tea.Model       = (*Model)(nil)
	_ binder.Document = (*Model)(nil)
)

// New builds the form and binds the strength meter to it.
func New(opts Options) *Model {
	name := opts.FieldName
	if name == "" {
		name = binder.FieldName
	}

	m := &Model{
		fields: []*passwordField{
			newPasswordField(name, i18n.T("tui.password_label"), i18n.T("tui.password_placeholder")),
			newPasswordField(confirmFieldName, i18n.T("tui.confirm_label"), i18n.T("tui.confirm_placeholder")),
		},
		checklist: newChecklist(),
		keys:      newKeyMap(),
		help:      help.New(),
	}
	m.binding = binder.Bind(m, binder.WithFieldName(name))
	m.setReveal(opts.Reveal)
	m.fields[0].input.Focus()
	return m
}

// PasswordFields implements binder.Document.
func (m *Model) PasswordFields(name string) []binder.Field {
	var out []binder.Field
	for _, f := range m.fields {
		if f.name == name {
			out = append(out, f)
		}
	}
	return out
}

// RequirementMarkers implements binder.Document.
func (m *Model) RequirementMarkers() []binder.Marker {
	out := make([]binder.Marker, 0, len(m.checklist))
	for _, e := range m.checklist {
		out = append(out, e)
	}
	return out
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case pasteMsg:
		if msg.err != nil {
			m.status = i18n.T("tui.paste_failed", msg.err)
			logging.Debugf("clipboard read failed: %v", msg.err)
			return m, nil
		}
		m.status = ""
		f := m.fields[m.focus]
		f.input.SetValue(f.input.Value() + sanitizePaste(msg.text))
		f.input.CursorEnd()
		f.dispatch()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Reveal):
			m.setReveal(!m.reveal)
			return m, nil
		case key.Matches(msg, m.keys.Paste):
			return m, pasteCmd
		}
	}

	f := m.fields[m.focus]
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.dispatch()
	}
	return m, cmd
}

func (m *Model) View() string {
	var rows []string
	rows = append(rows, titleStyle.Render(i18n.T("app.title")))

	for i, f := range m.fields {
		rows = append(rows, f.View(i == m.focus), "")
	}
	if hint := m.matchHint(); hint != "" {
		rows = append(rows, hint)
	}

	rows = append(rows, headingStyle.Render(i18n.T("tui.requirements_heading")))
	for _, e := range m.checklist {
		rows = append(rows, e.View())
	}

	if m.status != "" {
		rows = append(rows, "", errorStyle.Render(m.status))
	}
	rows = append(rows, "", m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// matchHint compares the confirmation field with the primary field once the
// user has typed into it.
func (m *Model) matchHint() string {
	if len(m.fields) < 2 {
		return ""
	}
	primary, confirm := m.fields[0].Value(), m.fields[1].Value()
	if confirm == "" {
		return ""
	}
	if primary == confirm {
		return successStyle.Render(i18n.T("tui.passwords_match"))
	}
	return errorStyle.Render(i18n.T("tui.passwords_mismatch"))
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.fields)
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j, f := range m.fields {
		if j == m.focus {
			cmd = f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
	return cmd
}

func (m *Model) setReveal(reveal bool) {
	m.reveal = reveal
	for _, f := range m.fields {
		f.setReveal(reveal)
	}
}

func pasteCmd() tea.Msg {
	text, err := clipboard.ReadAll()
	return pasteMsg{text: text, err: err}
}

// sanitizePaste keeps the first line of pasted text.
func sanitizePaste(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
