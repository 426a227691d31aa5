package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Element wraps a node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// Tag returns the element name.
func (e *Element) Tag() string {
	if e == nil || e.node == nil {
		return ""
	}
	return e.node.Data
}

// GetAttribute returns the named attribute.
func (e *Element) GetAttribute(name string) (string, bool) {
	if e == nil || e.node == nil {
		return "", false
	}
	return attr(e.node, name)
}

// SetAttribute sets the named attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	if e == nil || e.node == nil {
		return
	}
	key := strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && strings.EqualFold(e.node.Attr[i].Key, key) {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute deletes the named attribute.
func (e *Element) RemoveAttribute(name string) {
	if e == nil || e.node == nil {
		return
	}
	kept := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			continue
		}
		kept = append(kept, a)
	}
	e.node.Attr = kept
}

// Focus moves autofocus onto this element; a document holds at most one.
func (e *Element) Focus() error {
	if e == nil || e.node == nil {
		return nil
	}
	if e.doc != nil {
		e.doc.walk(func(n *html.Node) bool {
			if n != e.node {
				(&Element{node: n}).RemoveAttribute(AttrAutofocus)
			}
			return true
		})
	}
	e.SetAttribute(AttrAutofocus, "")
	return nil
}

func (e *Element) String() string {
	if e == nil || e.node == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.node.Data)
	if id, ok := attr(e.node, "id"); ok {
		b.WriteString(` id="`)
		b.WriteString(id)
		b.WriteByte('"')
	}
	if name, ok := attr(e.node, "name"); ok {
		b.WriteString(` name="`)
		b.WriteString(name)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}
