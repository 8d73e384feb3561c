// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package binder wires the strength evaluator to a UI surface. Surfaces
// implement the small interfaces below (a web DOM, a terminal UI, ...);
// binder decides what to show and when, the surface decides how.
package binder

import (
	"github.com/toeirei/strengthmeter/core/strength"
	"github.com/toeirei/strengthmeter/internal/logging"
)

// FieldName is the name of the password fields that get an indicator
// unless overridden with WithFieldName.
const FieldName = "password1"

// Document is a screen holding password fields and requirement checklist
// entries.
type Document interface {
	// PasswordFields returns the password inputs called name.
	PasswordFields(name string) []Field
	// RequirementMarkers returns every checklist entry on the screen. It is
	// called on each input event.
	RequirementMarkers() []Marker
}

// Field is a single password input.
type Field interface {
	Value() string
	// OnInput registers fn to run synchronously whenever the value changes.
	OnInput(fn func())
	// InsertIndicator creates an indicator directly after the field. It
	// starts empty: 0% fill and no label.
	InsertIndicator() Indicator
}

// Indicator shows the strength of one field.
type Indicator interface {
	Update(score int, tier strength.Tier)
}

// Marker is one requirement checklist entry.
type Marker interface {
	// Requirement returns the requirement name the entry is tagged with,
	// or "" when untagged.
	Requirement() string
	Text() string
	SetText(text string)
	SetClass(class string)
}

type options struct {
	fieldName string
}

// Option configures Bind.
type Option func(*options)

// WithFieldName binds fields called name instead of FieldName.
func WithFieldName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fieldName = name
		}
	}
}

type boundField struct {
	field     Field
	indicator Indicator
}

// Binding is the result of Bind.
type Binding struct {
	doc    Document
	fields []boundField
}

// Bind inserts an indicator after every matching password field of doc and
// registers an input listener per field. A document without matching
// fields yields an empty Binding.
func Bind(doc Document, opts ...Option) *Binding {
	o := options{fieldName: FieldName}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Binding{doc: doc}
	for _, f := range doc.PasswordFields(o.fieldName) {
		bf := boundField{field: f, indicator: f.InsertIndicator()}
		b.fields = append(b.fields, bf)
		f.OnInput(func() { b.handle(bf) })
	}
	logging.Debugf("bound %d password field(s) named %q", len(b.fields), o.fieldName)
	return b
}

// Len returns the number of bound fields.
func (b *Binding) Len() int { return len(b.fields) }

// Refresh runs every field's input handler once with its current value.
func (b *Binding) Refresh() {
	for _, bf := range b.fields {
		b.handle(bf)
	}
}

func (b *Binding) handle(bf boundField) {
	password := bf.field.Value()
	res := strength.Evaluate(password)
	bf.indicator.Update(res.Score, res.Tier)

	for _, m := range b.doc.RequirementMarkers() {
		UpdateMarker(m, password)
	}
}
