// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds in-memory test doubles for the binder interfaces so
// tests can drive a Binding without a real surface.
package testutil

import (
	"github.com/toeirei/strengthmeter/core/binder"
	"github.com/toeirei/strengthmeter/core/strength"
)

// FakeIndicator records the last update it received.
type FakeIndicator struct {
	Score   int
	Tier    strength.Tier
	Updates int
}

func (i *FakeIndicator) Update(score int, tier strength.Tier) {
	i.Score = score
	i.Tier = tier
	i.Updates++
}

// FakeField is a password input with a settable value.
type FakeField struct {
	Name      string
	Val       string
	Indicator *FakeIndicator // set by InsertIndicator
	Inserted  int

	listeners []func()
}

func (f *FakeField) Value() string     { return f.Val }
func (f *FakeField) OnInput(fn func()) { f.listeners = append(f.listeners, fn) }

func (f *FakeField) InsertIndicator() binder.Indicator {
	f.Inserted++
	f.Indicator = &FakeIndicator{}
	return f.Indicator
}

// Listeners returns the number of registered input listeners.
func (f *FakeField) Listeners() int { return len(f.listeners) }

// Type sets the value and dispatches input listeners.
func (f *FakeField) Type(v string) {
	f.Val = v
	for _, fn := range f.listeners {
		fn()
	}
}

// FakeMarker is a checklist entry.
type FakeMarker struct {
	Req   string
	Txt   string
	Class string
}

func (m *FakeMarker) Requirement() string { return m.Req }
func (m *FakeMarker) Text() string        { return m.Txt }
func (m *FakeMarker) SetText(t string)    { m.Txt = t }
func (m *FakeMarker) SetClass(c string)   { m.Class = c }

// FakeDocument serves fields by name and counts checklist queries.
type FakeDocument struct {
	Fields  []*FakeField
	Markers []*FakeMarker
	Queries int
}

func (d *FakeDocument) PasswordFields(name string) []binder.Field {
	var out []binder.Field
	for _, f := range d.Fields {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

func (d *FakeDocument) RequirementMarkers() []binder.Marker {
	d.Queries++
	out := make([]binder.Marker, 0, len(d.Markers))
	for _, m := range d.Markers {
		out = append(out, m)
	}
	return out
}

// Checklist returns one untouched entry per requirement, in display order.
func Checklist() []*FakeMarker {
	return []*FakeMarker{
		{Req: "length", Txt: "At least 8 characters"},
		{Req: "uppercase", Txt: "One uppercase letter"},
		{Req: "lowercase", Txt: "One lowercase letter"},
		{Req: "number", Txt: "One number"},
		{Req: "special", Txt: "One special character"},
	}
}

var (
	_ binder.Document  = (*FakeDocument)(nil)
	_ binder.Field     = (*FakeField)(nil)
	_ binder.Indicator = (*FakeIndicator)(nil)
	_ binder.Marker    = (*FakeMarker)(nil)
)
