package textutil

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// Utils carries the logger and random source used by the helpers. The zero
// value is not usable; construct with New.
type Utils struct {
	logger zerolog.Logger
	rand   *rand.Rand
}

// Option configures Utils.
type Option func(*Utils)

// WithLogger routes trace lines to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(u *Utils) {
		u.logger = logger
	}
}

// WithRand overrides the random source used by GenerateID. A *rand.Rand is
// not safe for concurrent use, so callers sharing Utils across goroutines
// should keep the default source.
func WithRand(r *rand.Rand) Option {
	return func(u *Utils) {
		if r != nil {
			u.rand = r
		}
	}
}

// New builds Utils with a silent logger and the global random source.
func New(opts ...Option) *Utils {
	u := &Utils{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(u)
		}
	}
	return u
}

func (u *Utils) intN(n int) int {
	if u.rand != nil {
		return u.rand.IntN(n)
	}
	return rand.IntN(n)
}

// isSpace matches the space and line terminator set browsers trim: Unicode
// White_Space plus U+FEFF, without U+0085.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

var std = New()

// FormatString formats input using a silent logger. See Utils.FormatString.
func FormatString(input string) (string, error) {
	return std.FormatString(input)
}

// ValidateEmail checks email using a silent logger. See Utils.ValidateEmail.
func ValidateEmail(email string) bool {
	return std.ValidateEmail(email)
}

// GenerateID draws an identifier using a silent logger. See Utils.GenerateID.
func GenerateID(length int) (string, error) {
	return std.GenerateID(length)
}

// GenerateDefaultID draws an identifier of DefaultIDLength characters.
func GenerateDefaultID() string {
	return std.GenerateDefaultID()
}
