package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-formkit/pkg/focus"
)

// Tab is one entry of a TabBar. Focusing it makes it the active tab.
type Tab struct {
	Label string

	bar   *TabBar
	index int
}

// Focus activates the tab and redraws the bar.
func (t *Tab) Focus() error {
	if t == nil || t.bar == nil {
		return nil
	}
	t.bar.active = t.index
	return t.bar.Render()
}

func (t *Tab) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Label
}

// TabBar draws a single line of tabs with the active one bracketed.
type TabBar struct {
	out    io.Writer
	tabs   []*Tab
	active int
}

// NewTabBar builds a bar writing to out.
func NewTabBar(out io.Writer, labels ...string) *TabBar {
	bar := &TabBar{out: out}
	for i, label := range labels {
		bar.tabs = append(bar.tabs, &Tab{Label: label, bar: bar, index: i})
	}
	return bar
}

// Len returns the number of tabs.
func (b *TabBar) Len() int { return len(b.tabs) }

// Active returns the active tab index.
func (b *TabBar) Active() int { return b.active }

// Ref returns a ref to tab i; out of range indices yield a detached ref.
func (b *TabBar) Ref(i int) focus.Ref {
	if i < 0 || i >= len(b.tabs) {
		return focus.NewHandle(nil)
	}
	return focus.NewHandle(b.tabs[i])
}

// Render redraws the bar in place.
func (b *TabBar) Render() error {
	if b.out == nil {
		return nil
	}
	parts := make([]string, 0, len(b.tabs))
	for i, tab := range b.tabs {
		if i == b.active {
			parts = append(parts, "["+tab.Label+"]")
			continue
		}
		parts = append(parts, " "+tab.Label+" ")
	}
	_, err := fmt.Fprintf(b.out, "\r%s", strings.Join(parts, " "))
	return err
}

// Navigator moves through a TabBar with arrow, Home and End keys.
type Navigator struct {
	bar   *TabBar
	keys  KeyReader
	focus *focus.Manager
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithFocusManager runs index math and focus changes through m.
func WithFocusManager(m *focus.Manager) NavigatorOption {
	return func(n *Navigator) {
		if m != nil {
			n.focus = m
		}
	}
}

// NewNavigator wires bar to keys.
func NewNavigator(bar *TabBar, keys KeyReader, opts ...NavigatorOption) *Navigator {
	n := &Navigator{bar: bar, keys: keys, focus: focus.New()}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Run reads keys until Enter, returning the selected index. Escape and
// interrupt return ErrAborted.
func (n *Navigator) Run(ctx context.Context) (int, error) {
	if n.bar == nil || n.bar.Len() == 0 {
		return -1, ErrNoTabs
	}
	if err := n.bar.Render(); err != nil {
		return -1, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		r, _, err := n.keys.ReadRune()
		if err != nil {
			return -1, fmt.Errorf("tui: read key: %w", err)
		}

		switch name := KeyName(r); name {
		case KeyEnter:
			return n.bar.Active(), nil
		case KeyEscape, KeyInterrupt:
			return -1, ErrAborted
		default:
			next, err := n.focus.CalcNewTabIndex(name, n.bar.Active(), n.bar.Len())
			if err != nil {
				return -1, err
			}
			if next == n.bar.Active() {
				continue
			}
			if err := n.focus.RestoreFocus(n.bar.Ref(next)); err != nil {
				return -1, err
			}
		}
	}
}
