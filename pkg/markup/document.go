// Package markup applies the focus helpers to server-rendered HTML. A parsed
// fragment exposes its elements as focus.Element and focus.Focuser values:
// focusing an element moves the autofocus attribute onto it, and toggling
// inert rewrites the inert and tabindex attributes. Render writes the result
// back through a sanitising policy.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formkit/pkg/focus"
)

// AttrAutofocus marks the element a browser focuses on load.
const AttrAutofocus = "autofocus"

// Document is a parsed HTML fragment.
type Document struct {
	nodes []*html.Node
}

// Parse reads an HTML fragment in a <body> context.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("markup: reader is nil")
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("markup: parse fragment: %w", err)
	}
	return &Document{nodes: nodes}, nil
}

// ParseString is Parse over a string.
func ParseString(fragment string) (*Document, error) {
	return Parse(strings.NewReader(fragment))
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	if d == nil || strings.TrimSpace(id) == "" {
		return nil
	}
	var found *html.Node
	d.walk(func(n *html.Node) bool {
		if value, ok := attr(n, "id"); ok && value == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return &Element{doc: d, node: found}
}

// Refs maps form controls (input, select, textarea, button) by name, or by
// id when they have no name. The first control wins for duplicate names.
func (d *Document) Refs() focus.Refs {
	refs := focus.Refs{}
	if d == nil {
		return refs
	}
	d.walk(func(n *html.Node) bool {
		switch n.DataAtom {
		case atom.Input, atom.Select, atom.Textarea, atom.Button:
		default:
			return true
		}
		key, _ := attr(n, "name")
		if strings.TrimSpace(key) == "" {
			key, _ = attr(n, "id")
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return true
		}
		if _, exists := refs[key]; !exists {
			refs[key] = focus.NewHandle(&Element{doc: d, node: n})
		}
		return true
	})
	return refs
}

// Focused returns the element carrying autofocus, or nil.
func (d *Document) Focused() *Element {
	if d == nil {
		return nil
	}
	var found *html.Node
	d.walk(func(n *html.Node) bool {
		if _, ok := attr(n, AttrAutofocus); ok {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return &Element{doc: d, node: found}
}

// Render writes the fragment through the sanitising policy.
func (d *Document) Render(w io.Writer) error {
	raw, err := d.renderRaw()
	if err != nil {
		return err
	}
	sanitized := Policy().SanitizeBytes(raw)
	if _, err := w.Write(sanitized); err != nil {
		return fmt.Errorf("markup: write: %w", err)
	}
	return nil
}

// String renders the fragment, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) renderRaw() ([]byte, error) {
	var buf bytes.Buffer
	if d == nil {
		return nil, nil
	}
	for _, n := range d.nodes {
		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("markup: render: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// walk visits element nodes depth-first until fn returns false.
func (d *Document) walk(fn func(*html.Node) bool) {
	var visit func(*html.Node) bool
	visit = func(n *html.Node) bool {
		if n.Type == html.ElementNode && !fn(n) {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	for _, n := range d.nodes {
		if !visit(n) {
			return
		}
	}
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}
