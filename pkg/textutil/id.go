package textutil

import (
	"strings"

	"github.com/goliatone/go-formkit/pkg/errs"
)

const (
	opGenerateID = "generateId"

	// DefaultIDLength is used when no length is supplied.
	DefaultIDLength = 8

	// IDAlphabet lists the characters GenerateID draws from.
	IDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateID returns length characters drawn independently and uniformly from
// IDAlphabet. The output is not suitable for secrets.
func (u *Utils) GenerateID(length int) (string, error) {
	u.logger.Debug().Str("op", opGenerateID).Int("length", length).Msg("running")

	if length <= 0 {
		err := errs.Invalid(opGenerateID, "length", "length must be a positive number")
		u.logger.Debug().Str("op", opGenerateID).Err(err).Msg("error")
		return "", err
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(IDAlphabet[u.intN(len(IDAlphabet))])
	}
	id := b.String()

	u.logger.Debug().Str("op", opGenerateID).Str("result", id).Msg("returning")
	return id, nil
}

// GenerateDefaultID returns an identifier of DefaultIDLength characters.
func (u *Utils) GenerateDefaultID() string {
	id, _ := u.GenerateID(DefaultIDLength)
	return id
}
