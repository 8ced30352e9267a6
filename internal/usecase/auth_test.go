package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	pkgAuth "github.com/strandart/shop/internal/pkg/auth"
	testhelpers "github.com/strandart/shop/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func newAuthFixture(users *testhelpers.UserRepositoryStub, passcodes *testhelpers.PasscodeRepositoryStub, mailer *testhelpers.MailerStub) *AuthUseCase {
	return NewAuthUseCase(users, passcodes, testhelpers.HasherStub{}, newStrategyStub(), mailer, 10*time.Minute, discardLogger())
}

func TestRequestPasscodeSignup(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	passcodes := &testhelpers.PasscodeRepositoryStub{}
	mailer := &testhelpers.MailerStub{}
	uc := newAuthFixture(users, passcodes, mailer)

	if err := uc.RequestPasscode(context.Background(), "Alice@Example.com", model.PasscodePurposeSignup); err != nil {
		t.Fatalf("request passcode failed: %v", err)
	}
	challenge, err := passcodes.Get(context.Background(), "alice@example.com", model.PasscodePurposeSignup)
	if err != nil {
		t.Fatalf("expected stored challenge: %v", err)
	}
	if challenge.CodeHash == "" {
		t.Fatalf("expected hashed code to be stored")
	}
	if len(mailer.Passcodes) != 1 {
		t.Fatalf("expected one passcode mail, got %d", len(mailer.Passcodes))
	}
	sent := mailer.Passcodes[0]
	if sent.To != "alice@example.com" || sent.Purpose != model.PasscodePurposeSignup {
		t.Fatalf("unexpected mail %+v", sent)
	}
	if len(sent.Code) != pkgAuth.PasscodeLength {
		t.Fatalf("unexpected code length %d", len(sent.Code))
	}
	if challenge.CodeHash != "hash:"+sent.Code {
		t.Fatalf("stored hash does not match mailed code")
	}
}

func TestRequestPasscodeSignupExistingEmail(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "bob@example.com", "Bob", "hash:x"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	uc := newAuthFixture(users, &testhelpers.PasscodeRepositoryStub{}, &testhelpers.MailerStub{})

	if err := uc.RequestPasscode(context.Background(), "bob@example.com", model.PasscodePurposeSignup); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRequestPasscodeResetUnknownEmail(t *testing.T) {
	uc := newAuthFixture(testhelpers.NewUserRepositoryStub(), &testhelpers.PasscodeRepositoryStub{}, &testhelpers.MailerStub{})

	if err := uc.RequestPasscode(context.Background(), "ghost@example.com", model.PasscodePurposeReset); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRequestPasscodeMailFailurePropagates(t *testing.T) {
	mailer := &testhelpers.MailerStub{
		PasscodeFn: func(ctx context.Context, to string, purpose model.PasscodePurpose, code string) error {
			return errors.New("relay down")
		},
	}
	uc := newAuthFixture(testhelpers.NewUserRepositoryStub(), &testhelpers.PasscodeRepositoryStub{}, mailer)

	if err := uc.RequestPasscode(context.Background(), "carol@example.com", model.PasscodePurposeSignup); err == nil {
		t.Fatalf("expected mail failure to propagate")
	}
}

func TestCompleteSignup(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	passcodes := &testhelpers.PasscodeRepositoryStub{}
	mailer := &testhelpers.MailerStub{}
	uc := newAuthFixture(users, passcodes, mailer)

	ctx := context.Background()
	if err := uc.RequestPasscode(ctx, "dave@example.com", model.PasscodePurposeSignup); err != nil {
		t.Fatalf("request passcode: %v", err)
	}
	code := mailer.Passcodes[0].Code

	user, token, err := uc.CompleteSignup(ctx, "dave@example.com", "Dave", "secret", code)
	if err != nil {
		t.Fatalf("complete signup failed: %v", err)
	}
	if user.Email != "dave@example.com" || user.Name != "Dave" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token != fmt.Sprintf("token-%d", user.ID) {
		t.Fatalf("unexpected token %q", token)
	}
	if _, err := passcodes.Get(ctx, "dave@example.com", model.PasscodePurposeSignup); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected challenge to be consumed, got %v", err)
	}
}

func TestCompleteSignupWrongCode(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	passcodes := &testhelpers.PasscodeRepositoryStub{}
	mailer := &testhelpers.MailerStub{}
	uc := newAuthFixture(users, passcodes, mailer)

	ctx := context.Background()
	if err := uc.RequestPasscode(ctx, "erin@example.com", model.PasscodePurposeSignup); err != nil {
		t.Fatalf("request passcode: %v", err)
	}

	if _, _, err := uc.CompleteSignup(ctx, "erin@example.com", "Erin", "secret", "000000x"); !errors.Is(err, domainErrors.ErrInvalidPasscode) {
		t.Fatalf("expected ErrInvalidPasscode, got %v", err)
	}
	if _, err := users.GetByEmail(ctx, "erin@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("no user must be created on wrong code")
	}
}

func TestCompleteSignupExpiredCode(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	passcodes := &testhelpers.PasscodeRepositoryStub{}
	mailer := &testhelpers.MailerStub{}
	uc := newAuthFixture(users, passcodes, mailer)

	ctx := context.Background()
	if err := uc.RequestPasscode(ctx, "frank@example.com", model.PasscodePurposeSignup); err != nil {
		t.Fatalf("request passcode: %v", err)
	}
	uc.now = func() time.Time { return time.Now().Add(time.Hour) }

	if _, _, err := uc.CompleteSignup(ctx, "frank@example.com", "Frank", "secret", mailer.Passcodes[0].Code); !errors.Is(err, domainErrors.ErrPasscodeExpired) {
		t.Fatalf("expected ErrPasscodeExpired, got %v", err)
	}
}

func TestCompleteSignupNoChallenge(t *testing.T) {
	uc := newAuthFixture(testhelpers.NewUserRepositoryStub(), &testhelpers.PasscodeRepositoryStub{}, &testhelpers.MailerStub{})

	if _, _, err := uc.CompleteSignup(context.Background(), "nobody@example.com", "N", "secret", "123456"); !errors.Is(err, domainErrors.ErrInvalidPasscode) {
		t.Fatalf("expected ErrInvalidPasscode, got %v", err)
	}
}

func TestResetPassword(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "gail@example.com", "Gail", "hash:old"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	passcodes := &testhelpers.PasscodeRepositoryStub{}
	mailer := &testhelpers.MailerStub{}
	uc := newAuthFixture(users, passcodes, mailer)

	ctx := context.Background()
	if err := uc.RequestPasscode(ctx, "gail@example.com", model.PasscodePurposeReset); err != nil {
		t.Fatalf("request passcode: %v", err)
	}
	if err := uc.ResetPassword(ctx, "gail@example.com", "newpass", mailer.Passcodes[0].Code); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}
	stored, err := users.GetByEmail(ctx, "gail@example.com")
	if err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if stored.PasswordHash != "hash:newpass" {
		t.Fatalf("password hash not replaced: %q", stored.PasswordHash)
	}
	if _, _, err := uc.Login(ctx, "gail@example.com", "newpass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "henry@example.com", "Henry", "hash:pw"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	uc := newAuthFixture(users, &testhelpers.PasscodeRepositoryStub{}, &testhelpers.MailerStub{})

	user, token, err := uc.Login(context.Background(), "Henry@Example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != fmt.Sprintf("token-%d", user.ID) {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "ivy@example.com", "Ivy", "hash:pw"); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	uc := newAuthFixture(users, &testhelpers.PasscodeRepositoryStub{}, &testhelpers.MailerStub{})

	cases := []struct {
		name, email, password string
	}{
		{"unknown email", "jack@example.com", "pw"},
		{"wrong password", "ivy@example.com", "nope"},
		{"empty email", "", "pw"},
		{"empty password", "ivy@example.com", ""},
	}
	for _, tc := range cases {
		if _, _, err := uc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestParseToken(t *testing.T) {
	uc := newAuthFixture(testhelpers.NewUserRepositoryStub(), &testhelpers.PasscodeRepositoryStub{}, &testhelpers.MailerStub{})

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("unexpected user id %d", id)
	}
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestPurgeExpiredPasscodes(t *testing.T) {
	passcodes := &testhelpers.PasscodeRepositoryStub{
		PurgeExpiredFn: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	uc := newAuthFixture(testhelpers.NewUserRepositoryStub(), passcodes, &testhelpers.MailerStub{})

	purged, err := uc.PurgeExpiredPasscodes(context.Background())
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if purged != 3 {
		t.Fatalf("expected 3 purged, got %d", purged)
	}
}
