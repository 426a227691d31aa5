package focus

import "github.com/rs/zerolog"

// Manager runs the focus helpers with an injected logger.
type Manager struct {
	logger         zerolog.Logger
	normalizePaths bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes trace lines to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithPathNormalization lets FocusFirstError match server-style error paths
// such as "/body/owner/email" against dotted ref keys when the raw key has
// no ref.
func WithPathNormalization() Option {
	return func(m *Manager) {
		m.normalizePaths = true
	}
}

// New returns a Manager with a silent logger.
func New(opts ...Option) *Manager {
	m := &Manager{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

var std = New()

// FocusFirstError uses a silent Manager. See Manager.FocusFirstError.
func FocusFirstError(errors FieldErrors, refs Refs) error {
	return std.FocusFirstError(errors, refs)
}

// RestoreFocus uses a silent Manager. See Manager.RestoreFocus.
func RestoreFocus(ref Ref) error {
	return std.RestoreFocus(ref)
}

// SetTocFocus uses a silent Manager. See Manager.SetTocFocus.
func SetTocFocus(open bool, btnRef, linkRef Ref) error {
	return std.SetTocFocus(open, btnRef, linkRef)
}

// CalcNewTabIndex uses a silent Manager. See Manager.CalcNewTabIndex.
func CalcNewTabIndex(key string, index, total int) (int, error) {
	return std.CalcNewTabIndex(key, index, total)
}

// ToggleInert uses a silent Manager. See Manager.ToggleInert.
func ToggleInert(el Element, open bool) error {
	return std.ToggleInert(el, open)
}
