// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

package binder

import (
	"strings"

	"github.com/toeirei/strengthmeter/core/strength"
)

// Marker glyphs and classes written to checklist entries.
const (
	GlyphSatisfied   = "✓"
	GlyphUnsatisfied = "○"

	ClassSatisfied   = "text-success"
	ClassUnsatisfied = "text-muted"
)

// MarkText prefixes text with the glyph for satisfied. A glyph written by a
// previous call is stripped first, so repeated calls never stack glyphs.
func MarkText(text string, satisfied bool) string {
	for {
		trimmed := strings.TrimPrefix(text, GlyphSatisfied+" ")
		trimmed = strings.TrimPrefix(trimmed, GlyphUnsatisfied+" ")
		if trimmed == text {
			break
		}
		text = trimmed
	}
	if satisfied {
		return GlyphSatisfied + " " + text
	}
	return GlyphUnsatisfied + " " + text
}

// MarkerClass returns the class for a checklist entry.
func MarkerClass(satisfied bool) string {
	if satisfied {
		return ClassSatisfied
	}
	return ClassUnsatisfied
}

// UpdateMarker recomputes the requirement m is tagged with against password
// and rewrites its class and glyph. Entries with a missing or unknown tag
// are left untouched.
func UpdateMarker(m Marker, password string) {
	req, ok := strength.ParseRequirement(m.Requirement())
	if !ok {
		return
	}
	SetMarker(m, req.Satisfied(password))
}

// SetMarker writes the satisfied state to m.
func SetMarker(m Marker, satisfied bool) {
	m.SetClass(MarkerClass(satisfied))
	m.SetText(MarkText(m.Text(), satisfied))
}
