package markup

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formkit/pkg/focus"
)

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy

	tabIndexPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	savedIndexPattern = regexp.MustCompile(`^(-?[0-9]+)?$`)
	emptyPattern      = regexp.MustCompile(`^$`)
	ariaAttrPattern   = regexp.MustCompile(`^[A-Za-z0-9 _.:\-]*$`)
)

// Policy returns the shared policy used by Render: structural and form
// markup plus the focus and inert attributes managed by this module.
func Policy() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()

		policy.AllowElements(
			"form", "fieldset", "legend", "label", "input", "select", "option",
			"optgroup", "textarea", "button", "output", "nav", "main", "aside",
			"section", "header", "footer", "dialog",
		)

		// id and title come with UGCPolicy; a second global rule would emit
		// them twice.
		policy.AllowAttrs("class", "role", "hidden").Globally()
		policy.AllowAttrs("inert", "autofocus").Globally()
		policy.AllowAttrs("tabindex").Matching(tabIndexPattern).Globally()
		policy.AllowAttrs(focus.AttrSavedTabIndex).Matching(savedIndexPattern).Globally()
		policy.AllowAttrs(focus.AttrSavedInert).Matching(emptyPattern).Globally()
		policy.AllowAttrs(
			"aria-label", "aria-labelledby", "aria-describedby", "aria-invalid",
			"aria-expanded", "aria-controls", "aria-selected", "aria-hidden",
			"aria-errormessage", "aria-current",
		).Matching(ariaAttrPattern).Globally()

		policy.AllowAttrs("name", "disabled", "required", "readonly").OnElements("input", "select", "textarea", "button", "fieldset")
		policy.AllowAttrs("type", "value", "placeholder", "checked", "min", "max", "step", "pattern", "autocomplete").OnElements("input")
		policy.AllowAttrs("type").OnElements("button")
		policy.AllowAttrs("multiple", "size").OnElements("select")
		policy.AllowAttrs("value", "selected", "label").OnElements("option")
		policy.AllowAttrs("label").OnElements("optgroup")
		policy.AllowAttrs("rows", "cols", "placeholder").OnElements("textarea")
		policy.AllowAttrs("for").OnElements("label", "output")
		policy.AllowAttrs("method", "novalidate").OnElements("form")
		policy.AllowAttrs("open").OnElements("dialog")

		formPolicy = policy
	})
	return formPolicy
}
