// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/strengthmeter/core/binder"
	"github.com/toeirei/strengthmeter/core/strength"
	"github.com/toeirei/strengthmeter/ui"
)

const meterWidth = 40

// passwordField is a masked text input. It implements binder.Field.
type passwordField struct {
	name      string
	label     string
	input     textinput.Model
	listeners []func()
	meter     *meter // nil unless an indicator was inserted
}

func newPasswordField(name, label, placeholder string) *passwordField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0 // no limit
	ti.Width = meterWidth
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return &passwordField{name: name, label: label, input: ti}
}

func (f *passwordField) Value() string { return f.input.Value() }

func (f *passwordField) OnInput(fn func()) {
	f.listeners = append(f.listeners, fn)
}

func (f *passwordField) InsertIndicator() binder.Indicator {
	f.meter = newMeter()
	return f.meter
}

// dispatch runs the input listeners, the terminal equivalent of an input
// event.
func (f *passwordField) dispatch() {
	for _, fn := range f.listeners {
		fn()
	}
}

func (f *passwordField) setReveal(reveal bool) {
	if reveal {
		f.input.EchoMode = textinput.EchoNormal
	} else {
		f.input.EchoMode = textinput.EchoPassword
	}
}

func (f *passwordField) View(focused bool) string {
	label := labelStyle.Render(f.label)
	if focused {
		label = focusedLabelStyle.Render(f.label)
	}
	rows := []string{label, f.input.View()}
	if f.meter != nil {
		rows = append(rows, f.meter.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// meter is the strength indicator drawn below a field. It implements
// binder.Indicator.
type meter struct {
	score   int
	tier    strength.Tier
	labeled bool
	bar     progress.Model
}

func newMeter() *meter {
	bar := progress.New(
		progress.WithSolidFill(string(colorSubtle)),
		progress.WithoutPercentage(),
		progress.WithWidth(meterWidth),
	)
	return &meter{bar: bar}
}

func (m *meter) Update(score int, tier strength.Tier) {
	m.score = score
	m.tier = tier
	m.labeled = true
	m.bar.FullColor = string(tierColor(tier))
}

func (m *meter) View() string {
	bar := m.bar.ViewAs(float64(m.score) / 100)
	if !m.labeled {
		return bar
	}
	label := lipgloss.NewStyle().Foreground(tierColor(m.tier)).Render(ui.TierLabel(m.tier))
	return lipgloss.JoinVertical(lipgloss.Left, bar, label)
}

// checklistEntry is one requirement line. It implements binder.Marker.
type checklistEntry struct {
	requirement string
	text        string
	class       string
}

func newChecklist() []*checklistEntry {
	var out []*checklistEntry
	for _, r := range strength.Requirements() {
		out = append(out, &checklistEntry{
			requirement: string(r),
			text:        binder.MarkText(ui.RequirementText(r), false),
			class:       binder.ClassUnsatisfied,
		})
	}
	return out
}

func (e *checklistEntry) Requirement() string { return e.requirement }
func (e *checklistEntry) Text() string        { return e.text }
func (e *checklistEntry) SetText(t string)    { e.text = t }
func (e *checklistEntry) SetClass(c string)   { e.class = c }

func (e *checklistEntry) View() string {
	if e.class == binder.ClassSatisfied {
		return successStyle.Render(e.text)
	}
	return helpStyle.Render(e.text)
}
