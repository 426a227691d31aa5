package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formkit/pkg/textutil"
)

// ErrInvalidEmail is reported by the email prompt validator.
var ErrInvalidEmail = errors.New("please enter a valid email address")

// EmailOption configures PromptEmail.
type EmailOption func(*emailPrompt)

type emailPrompt struct {
	confirm bool
}

// WithConfirmation asks the user to confirm a valid address before it is
// returned; declining asks for the address again.
func WithConfirmation() EmailOption {
	return func(p *emailPrompt) {
		p.confirm = true
	}
}

// PromptEmail asks for an email address until the answer passes validate.
// A nil validate uses textutil.ValidateEmail.
func PromptEmail(ctx context.Context, driver PromptDriver, message string, validate func(string) bool, opts ...EmailOption) (string, error) {
	if driver == nil {
		driver = NewSurveyDriver(nil)
	}
	if validate == nil {
		validate = textutil.ValidateEmail
	}
	if message == "" {
		message = "Email"
	}
	var cfg emailPrompt
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	check := func(value string) error {
		if !validate(value) {
			return ErrInvalidEmail
		}
		return nil
	}

	for {
		answer, err := driver.Input(ctx, InputConfig{Message: message, Validator: check})
		if err != nil {
			return "", err
		}
		if check(answer) != nil {
			if err := driver.Info(ctx, ErrInvalidEmail.Error()); err != nil {
				return "", err
			}
			continue
		}
		if !cfg.confirm {
			return answer, nil
		}

		ok, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Use %s?", answer),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if ok {
			return answer, nil
		}
	}
}
