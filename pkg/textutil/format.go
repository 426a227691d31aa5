package textutil

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formkit/pkg/errs"
)

const opFormatString = "formatString"

// FormatString trims input and returns it with the first character
// upper-cased and the remainder lower-cased. Input that is empty after
// trimming fails with errs.ErrEmptyInput.
func (u *Utils) FormatString(input string) (string, error) {
	u.logger.Debug().Str("op", opFormatString).Str("input", input).Msg("running")

	trimmed := trimSpace(input)
	if trimmed == "" {
		err := errs.Empty(opFormatString, "input", "input string cannot be empty")
		u.logger.Debug().Str("op", opFormatString).Err(err).Msg("error")
		return "", err
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	// Full case mapping: "ß" upper-cases to "SS" and a word-final sigma
	// lower-cases to "ς".
	out := cases.Upper(language.Und).String(string(first)) + cases.Lower(language.Und).String(trimmed[size:])

	u.logger.Debug().Str("op", opFormatString).Str("result", out).Msg("returning")
	return out, nil
}
