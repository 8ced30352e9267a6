package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
	pkgAuth "github.com/strandart/shop/internal/pkg/auth"
)

// AuthUseCase handles accounts, passcode challenges, and tokens. Signup and
// password reset both start with an emailed one-time code and complete only
// when the code is redeemed.
type AuthUseCase struct {
	users       repository.UserRepository
	passcodes   repository.PasscodeRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
	mailer      Mailer
	passcodeTTL time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	passcodes repository.PasscodeRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	mailer Mailer,
	passcodeTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:       users,
		passcodes:   passcodes,
		hasher:      hasher,
		tokens:      strategy,
		mailer:      mailer,
		passcodeTTL: passcodeTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// RequestPasscode issues a one-time code for signup or password reset and
// emails it. Signup requires the email to be unused; reset requires an
// existing account.
func (u *AuthUseCase) RequestPasscode(ctx context.Context, email string, purpose model.PasscodePurpose) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainErrors.ErrInvalidCredentials
	}

	_, err := u.users.GetByEmail(ctx, email)
	switch purpose {
	case model.PasscodePurposeSignup:
		if err == nil {
			return domainErrors.ErrAlreadyExists
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
	case model.PasscodePurposeReset:
		if err != nil {
			return err
		}
	default:
		return domainErrors.ErrInvalidPasscode
	}

	code, err := pkgAuth.GeneratePasscode()
	if err != nil {
		return err
	}
	hash, err := u.hasher.Hash(code)
	if err != nil {
		return err
	}

	expiresAt := u.now().Add(u.passcodeTTL)
	if err := u.passcodes.Upsert(ctx, email, purpose, hash, expiresAt); err != nil {
		return err
	}

	return u.mailer.SendPasscode(ctx, email, purpose, code)
}

// CompleteSignup redeems a signup passcode, creates the account, and
// returns an auth token.
func (u *AuthUseCase) CompleteSignup(ctx context.Context, email, name, password, code string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.verifyPasscode(ctx, email, model.PasscodePurposeSignup, code); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, name, hash)
	if err != nil {
		return nil, "", err
	}

	u.discardPasscode(ctx, email, model.PasscodePurposeSignup)

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ResetPassword redeems a reset passcode and replaces the stored hash.
func (u *AuthUseCase) ResetPassword(ctx context.Context, email, password, code string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domainErrors.ErrInvalidCredentials
	}

	if err := u.verifyPasscode(ctx, email, model.PasscodePurposeReset, code); err != nil {
		return err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := u.users.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}

	u.discardPasscode(ctx, email, model.PasscodePurposeReset)
	return nil
}

// Login validates credentials and returns an auth token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// PurgeExpiredPasscodes deletes dead challenges and returns the count.
func (u *AuthUseCase) PurgeExpiredPasscodes(ctx context.Context) (int64, error) {
	return u.passcodes.PurgeExpired(ctx)
}

// verifyPasscode checks the stored challenge against the submitted code.
// A missing challenge and a wrong code are indistinguishable to the caller.
func (u *AuthUseCase) verifyPasscode(ctx context.Context, email string, purpose model.PasscodePurpose, code string) error {
	challenge, err := u.passcodes.Get(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrInvalidPasscode
		}
		return err
	}
	if challenge.Expired(u.now()) {
		return domainErrors.ErrPasscodeExpired
	}
	if err := u.hasher.Compare(challenge.CodeHash, code); err != nil {
		return domainErrors.ErrInvalidPasscode
	}
	return nil
}

// discardPasscode removes a redeemed challenge. Failure here only leaves a
// dead row for the janitor, so it is logged and swallowed.
func (u *AuthUseCase) discardPasscode(ctx context.Context, email string, purpose model.PasscodePurpose) {
	if err := u.passcodes.Delete(ctx, email, purpose); err != nil {
		u.logger.WarnContext(ctx, "redeemed passcode not deleted",
			slog.String("purpose", string(purpose)),
			slog.String("error", err.Error()),
		)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
