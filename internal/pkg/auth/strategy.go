package auth

import "time"

// Strategy issues and verifies the bearer tokens handed to shoppers after
// signup or login.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes a token strategy.
type Options struct {
	// TTL bounds token lifetime. Zero means the strategy default.
	TTL time.Duration
}
