// Package formkit aggregates the form and focus utilities behind one
// surface. Kit exposes every helper as a typed method and, through Invoke,
// by operation name for callers holding untyped arguments.
//
//	kit := formkit.New(formkit.WithLogger(logger))
//	next, err := kit.CalcNewTabIndex(formkit.KeyArrowRight, 4, 5) // 0
package formkit

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formkit/pkg/errs"
	"github.com/goliatone/go-formkit/pkg/focus"
	"github.com/goliatone/go-formkit/pkg/registry"
	"github.com/goliatone/go-formkit/pkg/textutil"
)

// Ref aliases focus.Ref.
type Ref = focus.Ref

// Refs aliases focus.Refs.
type Refs = focus.Refs

// Handle aliases focus.Handle.
type Handle = focus.Handle

// NewHandle returns a ref pointing at target.
func NewHandle(target any) *Handle { return focus.NewHandle(target) }

// Focuser aliases focus.Focuser.
type Focuser = focus.Focuser

// Element aliases focus.Element.
type Element = focus.Element

// FieldErrors aliases focus.FieldErrors.
type FieldErrors = focus.FieldErrors

// Operation aliases registry.Operation.
type Operation = registry.Operation

// Navigation keys accepted by CalcNewTabIndex.
const (
	KeyArrowRight = focus.KeyArrowRight
	KeyArrowLeft  = focus.KeyArrowLeft
	KeyHome       = focus.KeyHome
	KeyEnd        = focus.KeyEnd
)

// Error sentinels re-exported for errors.Is checks.
var (
	ErrInvalidArgument  = errs.ErrInvalidArgument
	ErrEmptyInput       = errs.ErrEmptyInput
	ErrIndexOutOfRange  = errs.ErrIndexOutOfRange
	ErrUnknownOperation = registry.ErrUnknownOperation
)

// Kit bundles the string and focus helpers with a shared configuration.
type Kit struct {
	text  *textutil.Utils
	focus *focus.Manager
	ops   *registry.Registry
}

type settings struct {
	logger         zerolog.Logger
	rand           *rand.Rand
	normalizePaths bool
}

// Option configures a Kit.
type Option func(*settings)

// WithLogger routes trace lines of every helper to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRand seeds GenerateID from r.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) {
		s.rand = r
	}
}

// WithPathNormalization lets FocusFirstError match server-style error paths
// against dotted ref keys.
func WithPathNormalization() Option {
	return func(s *settings) {
		s.normalizePaths = true
	}
}

// New builds a Kit. Without options the helpers log nothing.
func New(opts ...Option) *Kit {
	cfg := settings{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	textOpts := []textutil.Option{textutil.WithLogger(cfg.logger)}
	if cfg.rand != nil {
		textOpts = append(textOpts, textutil.WithRand(cfg.rand))
	}
	focusOpts := []focus.Option{focus.WithLogger(cfg.logger)}
	if cfg.normalizePaths {
		focusOpts = append(focusOpts, focus.WithPathNormalization())
	}

	k := &Kit{
		text:  textutil.New(textOpts...),
		focus: focus.New(focusOpts...),
		ops:   registry.New(),
	}
	k.registerOperations()
	return k
}

// FormatString trims input and capitalises its first character.
func (k *Kit) FormatString(input string) (string, error) {
	return k.text.FormatString(input)
}

// ValidateEmail reports whether email is syntactically an address.
func (k *Kit) ValidateEmail(email string) bool {
	return k.text.ValidateEmail(email)
}

// GenerateID returns a random alphanumeric identifier of length characters.
func (k *Kit) GenerateID(length int) (string, error) {
	return k.text.GenerateID(length)
}

// GenerateDefaultID returns an identifier of textutil.DefaultIDLength.
func (k *Kit) GenerateDefaultID() string {
	return k.text.GenerateDefaultID()
}

// FocusFirstError focuses the ref of the first field in fieldErrors.
func (k *Kit) FocusFirstError(fieldErrors FieldErrors, refs Refs) error {
	return k.focus.FocusFirstError(fieldErrors, refs)
}

// RestoreFocus focuses the target behind ref when possible.
func (k *Kit) RestoreFocus(ref Ref) error {
	return k.focus.RestoreFocus(ref)
}

// SetTocFocus focuses linkRef when open, btnRef otherwise.
func (k *Kit) SetTocFocus(open bool, btnRef, linkRef Ref) error {
	return k.focus.SetTocFocus(open, btnRef, linkRef)
}

// CalcNewTabIndex computes the tab index after key is pressed.
func (k *Kit) CalcNewTabIndex(key string, index, total int) (int, error) {
	return k.focus.CalcNewTabIndex(key, index, total)
}

// ToggleInert makes el inert and unreachable by Tab, or reverses it.
func (k *Kit) ToggleInert(el Element, open bool) error {
	return k.focus.ToggleInert(el, open)
}

// Invoke runs an operation by name with untyped arguments.
func (k *Kit) Invoke(name string, args ...any) (any, error) {
	return k.ops.Invoke(name, args...)
}

// Operations lists the operations available to Invoke.
func (k *Kit) Operations() []Operation {
	return k.ops.Operations()
}

// Focus returns the underlying focus manager, for adapters such as
// tui.Navigator.
func (k *Kit) Focus() *focus.Manager {
	return k.focus
}

var std = New()

// FormatString uses the default Kit.
func FormatString(input string) (string, error) { return std.FormatString(input) }

// ValidateEmail uses the default Kit.
func ValidateEmail(email string) bool { return std.ValidateEmail(email) }

// GenerateID uses the default Kit.
func GenerateID(length int) (string, error) { return std.GenerateID(length) }

// FocusFirstError uses the default Kit.
func FocusFirstError(fieldErrors FieldErrors, refs Refs) error {
	return std.FocusFirstError(fieldErrors, refs)
}

// RestoreFocus uses the default Kit.
func RestoreFocus(ref Ref) error { return std.RestoreFocus(ref) }

// SetTocFocus uses the default Kit.
func SetTocFocus(open bool, btnRef, linkRef Ref) error {
	return std.SetTocFocus(open, btnRef, linkRef)
}

// CalcNewTabIndex uses the default Kit.
func CalcNewTabIndex(key string, index, total int) (int, error) {
	return std.CalcNewTabIndex(key, index, total)
}

// ToggleInert uses the default Kit.
func ToggleInert(el Element, open bool) error { return std.ToggleInert(el, open) }

// Invoke uses the default Kit.
func Invoke(name string, args ...any) (any, error) { return std.Invoke(name, args...) }
