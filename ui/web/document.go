// Copyright (c) 2026 Keymaster Team
// Strengthmeter - password strength indicator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package web attaches strength indicators to an HTML page. It parses the
// page into a DOM, implements binder.Document on top of it and serialises
// the mutated markup back out.
package web

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/toeirei/strengthmeter/core/binder"
	"github.com/toeirei/strengthmeter/core/strength"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names of the generated indicator markup. Host stylesheets target
// these.
const (
	ClassIndicator   = "password-strength mt-2"
	ClassTrack       = "progress"
	ClassFill        = "progress-bar"
	ClassLabel       = "strength-text"
	ClassRequirement = "password-requirement"

	// AttrRequirement tags a checklist entry with a requirement name.
	AttrRequirement = "data-requirement"
)

// Option configures a Document.
type Option func(*Document)

// WithLabeler sets how tier labels are written. The default is
// strength.Tier.Label.
func WithLabeler(fn func(strength.Tier) string) Option {
	return func(d *Document) {
		if fn != nil {
			d.label = fn
		}
	}
}

// Document is a parsed HTML page.
type Document struct {
	root   *html.Node
	label  func(strength.Tier) string
	fields map[*html.Node]*Field
}

var _ binder.Document = (*Document)(nil)

// Parse reads an HTML page.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{
		root:   root,
		label:  strength.Tier.Label,
		fields: map[*html.Node]*Field{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Render writes the page, including any inserted indicators.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// PasswordFields returns every <input type="password" name=name> in
// document order. Repeated calls return the same Field for the same input.
func (d *Document) PasswordFields(name string) []binder.Field {
	var out []binder.Field
	walk(d.root, func(n *html.Node) {
		if n.DataAtom != atom.Input {
			return
		}
		if !strings.EqualFold(attr(n, "type"), "password") || attr(n, "name") != name {
			return
		}
		out = append(out, d.field(n))
	})
	return out
}

// Fields is PasswordFields with the concrete type, for callers that need
// SetValue.
func (d *Document) Fields(name string) []*Field {
	var out []*Field
	for _, f := range d.PasswordFields(name) {
		out = append(out, f.(*Field))
	}
	return out
}

// RequirementMarkers returns every element tagged with data-requirement or
// the password-requirement class.
func (d *Document) RequirementMarkers() []binder.Marker {
	var out []binder.Marker
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if _, ok := lookupAttr(n, AttrRequirement); ok || hasClass(n, ClassRequirement) {
			out = append(out, &marker{node: n})
		}
	})
	return out
}

func (d *Document) field(n *html.Node) *Field {
	if f, ok := d.fields[n]; ok {
		return f
	}
	f := &Field{node: n, doc: d}
	d.fields[n] = f
	return f
}

// Field is a password input of a Document.
type Field struct {
	node      *html.Node
	doc       *Document
	value     *string
	listeners []func()
}

var _ binder.Field = (*Field)(nil)

// Value returns the typed value, or the markup's value attribute before
// anything was typed.
func (f *Field) Value() string {
	if f.value != nil {
		return *f.value
	}
	return attr(f.node, "value")
}

// SetValue types v into the field and dispatches input listeners. The value
// is kept in memory only; Render never writes it out.
func (f *Field) SetValue(v string) {
	f.value = &v
	for _, fn := range f.listeners {
		fn()
	}
}

func (f *Field) OnInput(fn func()) {
	f.listeners = append(f.listeners, fn)
}

// InsertIndicator inserts the indicator block as the input's next sibling.
func (f *Field) InsertIndicator() binder.Indicator {
	fill := element(atom.Div,
		html.Attribute{Key: "class", Val: ClassFill},
		html.Attribute{Key: "role", Val: "progressbar"},
		html.Attribute{Key: "style", Val: "width: 0%"},
	)
	track := element(atom.Div,
		html.Attribute{Key: "class", Val: ClassTrack},
		html.Attribute{Key: "style", Val: "height: 5px;"},
	)
	track.AppendChild(fill)

	label := element(atom.Small,
		html.Attribute{Key: "class", Val: ClassLabel + " text-muted mt-1"},
	)

	block := element(atom.Div, html.Attribute{Key: "class", Val: ClassIndicator})
	block.AppendChild(track)
	block.AppendChild(label)

	if parent := f.node.Parent; parent != nil {
		parent.InsertBefore(block, f.node.NextSibling)
	}
	return &indicator{fill: fill, label: label, labeler: f.doc.label}
}

type indicator struct {
	fill    *html.Node
	label   *html.Node
	labeler func(strength.Tier) string
}

func (i *indicator) Update(score int, tier strength.Tier) {
	setAttr(i.fill, "style", fmt.Sprintf("width: %d%%", score))
	setAttr(i.fill, "class", ClassFill+" "+tier.IndicatorClass())
	setText(i.label, i.labeler(tier))
	setAttr(i.label, "class", ClassLabel+" mt-1 "+tier.TextClass())
}

type marker struct {
	node *html.Node
}

func (m *marker) Requirement() string { return attr(m.node, AttrRequirement) }
func (m *marker) Text() string        { return strings.TrimSpace(textContent(m.node)) }
func (m *marker) SetText(t string)    { setText(m.node, t) }
func (m *marker) SetClass(c string) {
	setAttr(m.node, "class", ClassRequirement+" "+c)
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
