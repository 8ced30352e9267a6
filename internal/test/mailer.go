package test

import (
	"context"

	"github.com/strandart/shop/internal/domain/model"
)

// SentMail records one delivery request made against the mailer stub.
type SentMail struct {
	To        string
	Reference string
	Purpose   model.PasscodePurpose
	Code      string
}

// MailerStub captures outgoing mail for tests.
type MailerStub struct {
	ConfirmationFn func(context.Context, string, string) error
	PasscodeFn     func(context.Context, string, model.PasscodePurpose, string) error

	Confirmations []SentMail
	Passcodes     []SentMail
}

// SendOrderConfirmation records the request and delegates to the override.
func (s *MailerStub) SendOrderConfirmation(ctx context.Context, to, orderReference string) error {
	s.Confirmations = append(s.Confirmations, SentMail{To: to, Reference: orderReference})
	if s.ConfirmationFn != nil {
		return s.ConfirmationFn(ctx, to, orderReference)
	}
	return nil
}

// SendPasscode records the request and delegates to the override.
func (s *MailerStub) SendPasscode(ctx context.Context, to string, purpose model.PasscodePurpose, code string) error {
	s.Passcodes = append(s.Passcodes, SentMail{To: to, Purpose: purpose, Code: code})
	if s.PasscodeFn != nil {
		return s.PasscodeFn(ctx, to, purpose, code)
	}
	return nil
}
