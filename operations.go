package formkit

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-formkit/pkg/errs"
	"github.com/goliatone/go-formkit/pkg/focus"
	"github.com/goliatone/go-formkit/pkg/registry"
	"github.com/goliatone/go-formkit/pkg/textutil"
)

// Operation names accepted by Invoke.
const (
	OpFormatString    = "formatString"
	OpValidateEmail   = "validateEmail"
	OpGenerateID      = "generateId"
	OpFocusFirstError = "focusFirstError"
	OpRestoreFocus    = "restoreFocus"
	OpSetTocFocus     = "setTocFocus"
	OpCalcNewTabIndex = "calcNewTabIndex"
	OpToggleInert     = "toggleInert"
)

func (k *Kit) registerOperations() {
	k.ops.MustRegister(
		registry.Operation{
			Name:        OpFormatString,
			Params:      []string{"input"},
			Description: "trim and capitalise a string",
			Handler: func(args []any) (any, error) {
				input, err := registry.String(OpFormatString, "input", args, 0)
				if err != nil {
					return nil, err
				}
				return k.FormatString(input)
			},
		},
		registry.Operation{
			Name:        OpValidateEmail,
			Params:      []string{"email"},
			Description: "check email syntax",
			Handler: func(args []any) (any, error) {
				email, err := registry.String(OpValidateEmail, "email", args, 0)
				if err != nil {
					return nil, err
				}
				return k.ValidateEmail(email), nil
			},
		},
		registry.Operation{
			Name:        OpGenerateID,
			Params:      []string{"length?"},
			Description: "random alphanumeric id (default length 8)",
			Handler: func(args []any) (any, error) {
				length, err := registry.OptionalInt(OpGenerateID, "length", args, 0, textutil.DefaultIDLength)
				if err != nil {
					return nil, err
				}
				return k.GenerateID(length)
			},
		},
		registry.Operation{
			Name:        OpFocusFirstError,
			Params:      []string{"errors", "refs"},
			Description: "focus the ref of the first invalid field",
			Handler: func(args []any) (any, error) {
				refs, err := toRefs(registry.Arg(args, 1))
				if err != nil {
					return nil, err
				}
				fieldErrors, err := toFieldErrors(registry.Arg(args, 0))
				if err != nil {
					return nil, err
				}
				return nil, k.FocusFirstError(fieldErrors, refs)
			},
		},
		registry.Operation{
			Name:        OpRestoreFocus,
			Params:      []string{"ref?"},
			Description: "focus the target behind a ref",
			Handler: func(args []any) (any, error) {
				return nil, k.RestoreFocus(toRef(registry.Arg(args, 0)))
			},
		},
		registry.Operation{
			Name:        OpSetTocFocus,
			Params:      []string{"open", "btnRef", "linkRef"},
			Description: "focus the toc link when open, the toggle button when closed",
			Handler: func(args []any) (any, error) {
				open, err := registry.Bool(OpSetTocFocus, "open", args, 0)
				if err != nil {
					return nil, err
				}
				return nil, k.SetTocFocus(open, toRef(registry.Arg(args, 1)), toRef(registry.Arg(args, 2)))
			},
		},
		registry.Operation{
			Name:        OpCalcNewTabIndex,
			Params:      []string{"key", "index", "total"},
			Description: "next tab index for arrow/Home/End navigation",
			Handler: func(args []any) (any, error) {
				key, err := registry.String(OpCalcNewTabIndex, "key", args, 0)
				if err != nil {
					return nil, err
				}
				index, err := registry.Int(OpCalcNewTabIndex, "index", args, 1)
				if err != nil {
					return nil, err
				}
				total, err := registry.Int(OpCalcNewTabIndex, "total", args, 2)
				if err != nil {
					return nil, err
				}
				return k.CalcNewTabIndex(key, index, total)
			},
		},
		registry.Operation{
			Name:        OpToggleInert,
			Params:      []string{"el?", "open"},
			Description: "toggle inert and tabindex on an element",
			Handler: func(args []any) (any, error) {
				open, err := registry.Bool(OpToggleInert, "open", args, 1)
				if err != nil {
					return nil, err
				}
				raw := registry.Arg(args, 0)
				if raw == nil {
					return nil, k.ToggleInert(nil, open)
				}
				el, ok := raw.(focus.Element)
				if !ok {
					return nil, errs.Invalid(OpToggleInert, "el", fmt.Sprintf("el must expose attributes, got %T", raw))
				}
				return nil, k.ToggleInert(el, open)
			},
		},
	)
}

// toRef keeps refs and drops anything else, so non-ref values no-op.
func toRef(v any) focus.Ref {
	ref, _ := v.(focus.Ref)
	return ref
}

func toRefs(v any) (focus.Refs, error) {
	switch typed := v.(type) {
	case focus.Refs:
		if typed != nil {
			return typed, nil
		}
	case map[string]focus.Ref:
		if typed != nil {
			return focus.Refs(typed), nil
		}
	case map[string]any:
		if typed != nil {
			refs := make(focus.Refs, len(typed))
			for key, value := range typed {
				refs[key] = toRef(value)
			}
			return refs, nil
		}
	}
	return nil, errs.Invalid(OpFocusFirstError, "refs", "refs must be provided as an object")
}

func toFieldErrors(v any) (focus.FieldErrors, error) {
	switch typed := v.(type) {
	case nil:
		return nil, nil
	case focus.FieldErrors:
		return typed, nil
	case map[string][]string:
		return focus.FieldErrorsFromMap(typed), nil
	case map[string]string:
		out := make(map[string][]string, len(typed))
		for key, msg := range typed {
			out[key] = []string{msg}
		}
		return focus.FieldErrorsFromMap(out), nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var out focus.FieldErrors
		for _, key := range keys {
			out = out.Add(key, messagesOf(typed[key])...)
		}
		return out, nil
	case string:
		return focus.ParseFieldErrors([]byte(typed))
	case []byte:
		return focus.ParseFieldErrors(typed)
	default:
		return nil, errs.Invalid(OpFocusFirstError, "errors", fmt.Sprintf("errors must be an object, got %T", v))
	}
}

func messagesOf(v any) []string {
	switch typed := v.(type) {
	case nil:
		return nil
	case string:
		return []string{typed}
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(typed)}
	}
}
