package focus_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formkit/pkg/dom"
	"github.com/goliatone/go-formkit/pkg/errs"
	"github.com/goliatone/go-formkit/pkg/focus"
)

type notFocusable struct{}

func TestFocusFirstError_FocusesFirstField(t *testing.T) {
	email := dom.NewElement("input", "name", "email")
	name := dom.NewElement("input", "name", "name")
	refs := focus.Refs{
		"name":  focus.NewHandle(name),
		"email": focus.NewHandle(email),
	}
	fieldErrors := focus.FieldErrors{}.
		Add("email", "Email invalid").
		Add("name", "Name is required")

	if err := focus.FocusFirstError(fieldErrors, refs); err != nil {
		t.Fatalf("FocusFirstError: %v", err)
	}
	if email.FocusCount() != 1 || name.FocusCount() != 0 {
		t.Fatalf("expected only email focused, got email=%d name=%d", email.FocusCount(), name.FocusCount())
	}
}

func TestFocusFirstError_NoOps(t *testing.T) {
	el := dom.NewElement("input")
	cases := []struct {
		name   string
		errors focus.FieldErrors
		refs   focus.Refs
	}{
		{name: "empty errors", errors: focus.FieldErrors{}, refs: focus.Refs{"a": focus.NewHandle(el)}},
		{name: "nil errors", errors: nil, refs: focus.Refs{"a": focus.NewHandle(el)}},
		{name: "missing ref", errors: focus.FieldErrors{{Field: "b"}}, refs: focus.Refs{"a": focus.NewHandle(el)}},
		{name: "nil ref", errors: focus.FieldErrors{{Field: "a"}}, refs: focus.Refs{"a": nil}},
		{name: "typed nil handle", errors: focus.FieldErrors{{Field: "a"}}, refs: focus.Refs{"a": (*focus.Handle)(nil)}},
		{name: "detached handle", errors: focus.FieldErrors{{Field: "a"}}, refs: focus.Refs{"a": focus.NewHandle(nil)}},
		{name: "typed nil target", errors: focus.FieldErrors{{Field: "a"}}, refs: focus.Refs{"a": focus.NewHandle((*dom.Element)(nil))}},
		{name: "not focusable", errors: focus.FieldErrors{{Field: "a"}}, refs: focus.Refs{"a": focus.NewHandle(notFocusable{})}},
		{name: "empty refs", errors: focus.FieldErrors{{Field: "a"}}, refs: focus.Refs{}},
		{name: "empty first key", errors: focus.FieldErrors{{Field: ""}, {Field: "a"}}, refs: focus.Refs{"": focus.NewHandle(el), "a": focus.NewHandle(el)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := focus.FocusFirstError(tc.errors, tc.refs); err != nil {
				t.Fatalf("expected no-op, got %v", err)
			}
		})
	}
	if el.FocusCount() != 0 {
		t.Fatalf("element should never be focused, got %d", el.FocusCount())
	}
}

func TestFocusFirstError_NilRefs(t *testing.T) {
	err := focus.FocusFirstError(focus.FieldErrors{{Field: "a"}}, nil)
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFocusFirstError_PropagatesFocusError(t *testing.T) {
	boom := errors.New("focus failed")
	el := dom.NewElement("input").OnFocus(func(*dom.Element) error { return boom })

	var buf bytes.Buffer
	m := focus.New(focus.WithLogger(zerolog.New(&buf)))
	err := m.FocusFirstError(focus.FieldErrors{{Field: "a"}}, focus.Refs{"a": focus.NewHandle(el)})
	if err != boom {
		t.Fatalf("expected the focus error unchanged, got %v", err)
	}
	if !strings.Contains(buf.String(), `"message":"error"`) {
		t.Fatalf("expected error trace, got:\n%s", buf.String())
	}
}

func TestFocusFirstError_PathNormalization(t *testing.T) {
	email := dom.NewElement("input")
	refs := focus.Refs{"owner.email": focus.NewHandle(email)}
	fieldErrors := focus.FieldErrors{{Field: "/body/owner/email", Messages: []string{"Email invalid"}}}

	if err := focus.FocusFirstError(fieldErrors, refs); err != nil {
		t.Fatalf("FocusFirstError: %v", err)
	}
	if email.FocusCount() != 0 {
		t.Fatalf("raw paths must not match without normalisation")
	}

	m := focus.New(focus.WithPathNormalization())
	if err := m.FocusFirstError(fieldErrors, refs); err != nil {
		t.Fatalf("FocusFirstError: %v", err)
	}
	if email.FocusCount() != 1 {
		t.Fatalf("expected normalised path to focus owner.email")
	}
}

func TestRestoreFocus(t *testing.T) {
	btn := dom.NewElement("button")
	if err := focus.RestoreFocus(focus.NewHandle(btn)); err != nil {
		t.Fatalf("RestoreFocus: %v", err)
	}
	if btn.FocusCount() != 1 {
		t.Fatalf("expected button focused")
	}

	calls := 0
	ref := focus.RefFunc(func() any {
		calls++
		return btn
	})
	if err := focus.RestoreFocus(ref); err != nil {
		t.Fatalf("RestoreFocus: %v", err)
	}
	if calls != 1 || btn.FocusCount() != 2 {
		t.Fatalf("expected RefFunc resolution, calls=%d focus=%d", calls, btn.FocusCount())
	}

	for _, ref := range []focus.Ref{nil, (*focus.Handle)(nil), focus.NewHandle(nil), focus.RefFunc(nil), focus.NewHandle(notFocusable{})} {
		if err := focus.RestoreFocus(ref); err != nil {
			t.Fatalf("RestoreFocus(%#v): %v", ref, err)
		}
	}
}

func TestRestoreFocus_PropagatesFocusError(t *testing.T) {
	boom := errors.New("gone")
	el := dom.NewElement("button").OnFocus(func(*dom.Element) error { return boom })
	if err := focus.RestoreFocus(focus.NewHandle(el)); err != boom {
		t.Fatalf("expected focus error unchanged, got %v", err)
	}
}

func TestSetTocFocus(t *testing.T) {
	btn := dom.NewElement("button")
	link := dom.NewElement("a")

	if err := focus.SetTocFocus(true, focus.NewHandle(btn), focus.NewHandle(link)); err != nil {
		t.Fatalf("SetTocFocus(true): %v", err)
	}
	if link.FocusCount() != 1 || btn.FocusCount() != 0 {
		t.Fatalf("open should focus link, got link=%d btn=%d", link.FocusCount(), btn.FocusCount())
	}

	if err := focus.SetTocFocus(false, focus.NewHandle(btn), focus.NewHandle(link)); err != nil {
		t.Fatalf("SetTocFocus(false): %v", err)
	}
	if link.FocusCount() != 1 || btn.FocusCount() != 1 {
		t.Fatalf("close should focus button, got link=%d btn=%d", link.FocusCount(), btn.FocusCount())
	}

	if err := focus.SetTocFocus(true, nil, nil); err != nil {
		t.Fatalf("missing refs should no-op, got %v", err)
	}
}

func TestSetTocFocus_PropagatesFocusError(t *testing.T) {
	boom := errors.New("link detached")
	link := dom.NewElement("a").OnFocus(func(*dom.Element) error { return boom })
	if err := focus.SetTocFocus(true, nil, focus.NewHandle(link)); err != boom {
		t.Fatalf("expected focus error unchanged, got %v", err)
	}
}

func TestTraceLines(t *testing.T) {
	var buf bytes.Buffer
	m := focus.New(focus.WithLogger(zerolog.New(&buf)))
	if err := m.SetTocFocus(false, focus.NewHandle(dom.NewElement("button")), nil); err != nil {
		t.Fatalf("SetTocFocus: %v", err)
	}

	var ops []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.Contains(line, `"op":"setTocFocus"`) && strings.Contains(line, `"message":"running"`):
			ops = append(ops, "setTocFocus:running")
		case strings.Contains(line, `"op":"restoreFocus"`) && strings.Contains(line, `"message":"running"`):
			ops = append(ops, "restoreFocus:running")
		case strings.Contains(line, `"op":"restoreFocus"`) && strings.Contains(line, `"message":"returning"`):
			ops = append(ops, "restoreFocus:returning")
		case strings.Contains(line, `"op":"setTocFocus"`) && strings.Contains(line, `"message":"returning"`):
			ops = append(ops, "setTocFocus:returning")
		}
	}

	want := []string{"setTocFocus:running", "restoreFocus:running", "restoreFocus:returning", "setTocFocus:returning"}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("trace order mismatch (-want +got):\n%s", diff)
	}
}
