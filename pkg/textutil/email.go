package textutil

import "regexp"

const opValidateEmail = "validateEmail"

// emailPart excludes '@' and the characters isSpace matches, which RE2's \s
// alone does not cover.
const emailPart = `[^@\s\x{0B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`

// emailPattern is local@domain.tld where no part holds whitespace or '@'.
var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// ValidateEmail reports whether the trimmed email is syntactically an
// address. It performs no DNS or mailbox checks.
func (u *Utils) ValidateEmail(email string) bool {
	u.logger.Debug().Str("op", opValidateEmail).Str("email", email).Msg("running")

	ok := emailPattern.MatchString(trimSpace(email))

	u.logger.Debug().Str("op", opValidateEmail).Bool("result", ok).Msg("returning")
	return ok
}
