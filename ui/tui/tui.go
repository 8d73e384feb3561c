// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the terminal surface.
type Options struct {
	// FieldName names the primary password field. Fields with this name get
	// a strength meter. Empty means binder.FieldName.
	FieldName string
	// Reveal starts with passwords shown in clear text.
	Reveal bool
}

// Run starts the form in the alternate screen and blocks until the user
// quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
	).Run()
	return err
}
