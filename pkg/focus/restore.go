package focus

import (
	"fmt"

	"github.com/goliatone/go-formkit/pkg/errs"
)

const (
	opFocusFirstError = "focusFirstError"
	opRestoreFocus    = "restoreFocus"
	opSetTocFocus     = "setTocFocus"
)

// FocusFirstError focuses the ref registered for the first field in errors.
// A nil refs fails with errs.ErrInvalidArgument. Empty errors, a field with
// no ref, or a ref without a focusable target are no-ops. Errors returned by
// the target's Focus are passed back unchanged.
func (m *Manager) FocusFirstError(errors FieldErrors, refs Refs) error {
	if refs == nil {
		err := errs.Invalid(opFocusFirstError, "refs", "refs must be provided as an object")
		m.logger.Debug().Str("op", opFocusFirstError).Err(err).Msg("error")
		return err
	}

	m.logger.Debug().Str("op", opFocusFirstError).Strs("fields", errors.Fields()).Msg("running")

	key, ok := errors.First()
	if !ok || key == "" {
		m.logger.Debug().Str("op", opFocusFirstError).Msg("returning")
		return nil
	}

	ref, found := refs[key]
	if !found && m.normalizePaths {
		var matched string
		if matched, ref, found = lookupNormalized(key, refs); found {
			m.logger.Debug().Str("op", opFocusFirstError).Str("field", key).Str("matched", matched).Msg("normalized field path")
		}
	}

	if found {
		if focuser, ok := resolveFocuser(ref); ok {
			if err := focuser.Focus(); err != nil {
				m.logger.Debug().Str("op", opFocusFirstError).Err(err).Msg("error")
				return err
			}
		}
	}

	m.logger.Debug().Str("op", opFocusFirstError).Msg("returning")
	return nil
}

// RestoreFocus focuses the target behind ref when it is live and focusable,
// and does nothing otherwise. Errors from Focus are passed back unchanged.
func (m *Manager) RestoreFocus(ref Ref) error {
	target := currentOf(ref)
	m.logger.Debug().Str("op", opRestoreFocus).Str("target", describeTarget(target)).Msg("running")

	if focuser, ok := asFocuser(target); ok {
		if err := focuser.Focus(); err != nil {
			m.logger.Debug().Str("op", opRestoreFocus).Err(err).Msg("error")
			return err
		}
	}

	m.logger.Debug().Str("op", opRestoreFocus).Msg("returning")
	return nil
}

// SetTocFocus focuses linkRef when the table of contents opens and btnRef
// when it closes.
func (m *Manager) SetTocFocus(open bool, btnRef, linkRef Ref) error {
	m.logger.Debug().Str("op", opSetTocFocus).Bool("open", open).Msg("running")

	target := btnRef
	if open {
		target = linkRef
	}
	if err := m.RestoreFocus(target); err != nil {
		m.logger.Debug().Str("op", opSetTocFocus).Err(err).Msg("error")
		return err
	}

	m.logger.Debug().Str("op", opSetTocFocus).Msg("returning")
	return nil
}

func describeTarget(target any) string {
	if isNil(target) {
		return "<nil>"
	}
	if s, ok := target.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", target)
}
