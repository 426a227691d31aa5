// Package dom provides in-memory UI elements for callers that track focus
// and inert state without a rendering toolkit, and for tests of the focus
// helpers.
package dom

import (
	"sort"
	"strings"
)

// Attributes is a case-insensitive attribute set.
type Attributes struct {
	values map[string]string
}

// GetAttribute returns the named attribute.
func (a *Attributes) GetAttribute(name string) (string, bool) {
	if a == nil || a.values == nil {
		return "", false
	}
	value, ok := a.values[strings.ToLower(name)]
	return value, ok
}

// SetAttribute sets the named attribute.
func (a *Attributes) SetAttribute(name, value string) {
	if a == nil {
		return
	}
	if a.values == nil {
		a.values = make(map[string]string)
	}
	a.values[strings.ToLower(name)] = value
}

// RemoveAttribute deletes the named attribute.
func (a *Attributes) RemoveAttribute(name string) {
	if a == nil || a.values == nil {
		return
	}
	delete(a.values, strings.ToLower(name))
}

// Snapshot copies the attribute set.
func (a *Attributes) Snapshot() map[string]string {
	out := make(map[string]string)
	if a == nil {
		return out
	}
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

func (a *Attributes) render() string {
	if a == nil || len(a.values) == 0 {
		return ""
	}
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		if value := a.values[name]; value != "" {
			b.WriteString(`="`)
			b.WriteString(value)
			b.WriteByte('"')
		}
	}
	return b.String()
}

// Element is a focusable node with a native inert property.
type Element struct {
	Attributes
	Tag string

	inert   bool
	focused int
	onFocus func(*Element) error
}

// NewElement returns an Element, optionally seeded with attributes given as
// name/value pairs.
func NewElement(tag string, attrs ...string) *Element {
	el := &Element{Tag: tag}
	seed(&el.Attributes, attrs)
	return el
}

// OnFocus installs a hook run by Focus; a returned error aborts the focus.
func (e *Element) OnFocus(fn func(*Element) error) *Element {
	e.onFocus = fn
	return e
}

// Focus records a focus request.
func (e *Element) Focus() error {
	if e == nil {
		return nil
	}
	if e.onFocus != nil {
		if err := e.onFocus(e); err != nil {
			return err
		}
	}
	e.focused++
	return nil
}

// FocusCount reports how many times Focus succeeded.
func (e *Element) FocusCount() int {
	if e == nil {
		return 0
	}
	return e.focused
}

// SetInert sets the native inert property.
func (e *Element) SetInert(inert bool) {
	if e != nil {
		e.inert = inert
	}
}

// Inert reports the native inert property.
func (e *Element) Inert() bool {
	return e != nil && e.inert
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return "<" + e.Tag + e.Attributes.render() + ">"
}

// LegacyElement only exposes attributes, like toolkits that predate the
// inert property.
type LegacyElement struct {
	Attributes
	Tag string
}

// NewLegacyElement returns a LegacyElement seeded like NewElement.
func NewLegacyElement(tag string, attrs ...string) *LegacyElement {
	el := &LegacyElement{Tag: tag}
	seed(&el.Attributes, attrs)
	return el
}

func (e *LegacyElement) String() string {
	if e == nil {
		return "<nil>"
	}
	return "<" + e.Tag + e.Attributes.render() + ">"
}

func seed(a *Attributes, pairs []string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		a.SetAttribute(pairs[i], pairs[i+1])
	}
}
