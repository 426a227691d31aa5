package markup_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/focus"
	"github.com/goliatone/go-formkit/pkg/markup"
)

const signupForm = `<form id="signup" method="post">
  <label for="email">Email</label>
  <input id="email" name="email" type="email" autofocus>
  <input id="zip" name="address.zip" type="text">
  <select id="plan" name="plan"><option value="a">A</option></select>
  <textarea id="bio"></textarea>
  <button id="submit" type="submit">Save</button>
</form>
<nav id="toc" tabindex="0"><a href="#intro" id="toc-first">Intro</a></nav>`

func mustParse(t *testing.T, fragment string) *markup.Document {
	t.Helper()
	doc, err := markup.ParseString(fragment)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestRefs(t *testing.T) {
	doc := mustParse(t, signupForm)
	refs := doc.Refs()

	var keys []string
	for key := range refs {
		keys = append(keys, key)
	}
	want := []string{"address.zip", "bio", "email", "plan", "submit"}
	if diff := cmp.Diff(want, keys, sortStrings); diff != "" {
		t.Fatalf("ref keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFocusFirstErrorMovesAutofocus(t *testing.T) {
	doc := mustParse(t, signupForm)

	fieldErrors := focus.FieldErrors{}.Add("address.zip", "Zip is required").Add("email", "Email invalid")
	if err := focus.FocusFirstError(fieldErrors, doc.Refs()); err != nil {
		t.Fatalf("FocusFirstError: %v", err)
	}

	focused := doc.Focused()
	if focused == nil {
		t.Fatalf("expected a focused element")
	}
	if id, _ := focused.GetAttribute("id"); id != "zip" {
		t.Fatalf("expected zip focused, got %s", focused)
	}
	if _, ok := doc.ElementByID("email").GetAttribute(markup.AttrAutofocus); ok {
		t.Fatalf("autofocus must move off the previous element")
	}

	out := doc.String()
	if strings.Count(out, "autofocus") != 1 {
		t.Fatalf("expected exactly one autofocus in output:\n%s", out)
	}
}

func TestToggleInertOnMarkup(t *testing.T) {
	doc := mustParse(t, signupForm)
	toc := doc.ElementByID("toc")
	if toc == nil {
		t.Fatalf("toc not found")
	}

	if err := focus.ToggleInert(toc, true); err != nil {
		t.Fatalf("ToggleInert(true): %v", err)
	}
	out := doc.String()
	for _, want := range []string{`inert=""`, `tabindex="-1"`, `data-inert-tabindex="0"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}

	if err := focus.ToggleInert(toc, false); err != nil {
		t.Fatalf("ToggleInert(false): %v", err)
	}
	out = doc.String()
	if strings.Contains(out, "inert") {
		t.Fatalf("inert attributes should be gone:\n%s", out)
	}
	if !strings.Contains(out, `tabindex="0"`) {
		t.Fatalf("original tabindex should be restored:\n%s", out)
	}
}

func TestSetTocFocusOnMarkup(t *testing.T) {
	doc := mustParse(t, `<button id="toc-toggle">Contents</button><a id="toc-link" href="#a">A</a>`)
	btn := focus.NewHandle(doc.ElementByID("toc-toggle"))
	link := focus.NewHandle(doc.ElementByID("toc-link"))

	if err := focus.SetTocFocus(true, btn, link); err != nil {
		t.Fatalf("SetTocFocus: %v", err)
	}
	if got := doc.Focused().Tag(); got != "a" {
		t.Fatalf("expected link focused, got %q", got)
	}

	if err := focus.SetTocFocus(false, btn, link); err != nil {
		t.Fatalf("SetTocFocus: %v", err)
	}
	if got := doc.Focused().Tag(); got != "button" {
		t.Fatalf("expected button focused, got %q", got)
	}
}

func TestRenderSanitizes(t *testing.T) {
	doc := mustParse(t, `<div id="x" onclick="alert(1)" tabindex="javascript:1"><script>alert(1)</script><input name="q" autofocus></div>`)
	out := doc.String()

	for _, banned := range []string{"onclick", "<script", "javascript"} {
		if strings.Contains(out, banned) {
			t.Fatalf("expected %q stripped:\n%s", banned, out)
		}
	}
	for _, kept := range []string{`id="x"`, `name="q"`, `autofocus=""`} {
		if !strings.Contains(out, kept) {
			t.Fatalf("expected %s kept:\n%s", kept, out)
		}
	}
}

func TestElementByIDMissing(t *testing.T) {
	doc := mustParse(t, `<p id="a">x</p>`)
	if doc.ElementByID("missing") != nil {
		t.Fatalf("expected nil for missing id")
	}
	if err := focus.ToggleInert(doc.ElementByID("missing"), true); err != nil {
		t.Fatalf("typed nil element should no-op: %v", err)
	}
	if doc.Focused() != nil {
		t.Fatalf("expected no focused element")
	}
}

func TestRenderEmitsEachAttributeOnce(t *testing.T) {
	doc := mustParse(t, signupForm+`<aside id="side" title="Side" class="panel" role="note" inert tabindex="-1">s</aside>`)
	if err := focus.ToggleInert(doc.ElementByID("side"), true); err != nil {
		t.Fatalf("ToggleInert(true): %v", err)
	}
	out := doc.String()

	tags := strings.Split(out, "<")
	for _, tag := range tags {
		if end := strings.Index(tag, ">"); end >= 0 {
			tag = tag[:end]
		}
		fields := strings.Fields(tag)
		if len(fields) < 2 {
			continue
		}
		seen := map[string]bool{}
		for _, field := range fields[1:] {
			name, _, _ := strings.Cut(field, "=")
			if seen[name] {
				t.Fatalf("attribute %q repeated in <%s>:\n%s", name, tag, out)
			}
			seen[name] = true
		}
	}

	if err := focus.ToggleInert(doc.ElementByID("side"), false); err != nil {
		t.Fatalf("ToggleInert(false): %v", err)
	}
	if !strings.Contains(doc.String(), `<aside id="side" title="Side" class="panel" role="note" inert="" tabindex="-1">`) {
		t.Fatalf("already inert aside should keep its attributes:\n%s", doc.String())
	}
}
