package model

import "time"

// PasscodePurpose distinguishes what a one-time code may be redeemed for.
type PasscodePurpose string

const (
	PasscodePurposeSignup PasscodePurpose = "signup"
	PasscodePurposeReset  PasscodePurpose = "password-reset"
)

// IsValid reports whether the purpose is known.
func (p PasscodePurpose) IsValid() bool {
	return p == PasscodePurposeSignup || p == PasscodePurposeReset
}

// PasscodeChallenge is a pending one-time code emailed to a user. Only the
// hash is stored; at most one live challenge exists per (email, purpose).
type PasscodeChallenge struct {
	Email     string
	Purpose   PasscodePurpose
	CodeHash  string
	ExpiresAt time.Time
}

// Expired reports whether the challenge can no longer be redeemed.
func (c *PasscodeChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
