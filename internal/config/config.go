package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	JWTSecret        string
	TokenTTL         time.Duration
	MailRelayAddress string
	MailSender       string
	PasscodeTTL      time.Duration
	JanitorInterval  time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultMailSender      = "orders@strandart.example"
	defaultTokenTTL        = 24 * time.Hour
	defaultPasscodeTTL     = 10 * time.Minute
	defaultJanitorInterval = 5 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		JWTSecret:        getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TokenTTL:         getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		MailRelayAddress: getString(lookup, "MAIL_RELAY_ADDRESS", ""),
		MailSender:       getString(lookup, "MAIL_SENDER", defaultMailSender),
		PasscodeTTL:      getDuration(lookup, "PASSCODE_TTL", defaultPasscodeTTL),
		JanitorInterval:  getDuration(lookup, "JANITOR_INTERVAL", defaultJanitorInterval),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		passcodeTTLStr     = cfg.PasscodeTTL.String()
		janitorIntervalStr = cfg.JanitorInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.MailRelayAddress, "m", cfg.MailRelayAddress, "Mail relay base URL")
	fs.StringVar(&cfg.MailSender, "sender", cfg.MailSender, "From address for outgoing mail")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Auth token lifetime")
	fs.StringVar(&passcodeTTLStr, "passcode-ttl", passcodeTTLStr, "One-time code lifetime")
	fs.StringVar(&janitorIntervalStr, "janitor-interval", janitorIntervalStr, "Interval between expired passcode sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.PasscodeTTL, err = time.ParseDuration(passcodeTTLStr); err != nil {
		return nil, fmt.Errorf("invalid passcode ttl: %w", err)
	}

	if cfg.JanitorInterval, err = time.ParseDuration(janitorIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid janitor interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.PasscodeTTL <= 0 {
		cfg.PasscodeTTL = defaultPasscodeTTL
	}

	if cfg.JanitorInterval <= 0 {
		cfg.JanitorInterval = defaultJanitorInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.MailRelayAddress == "" {
		return nil, fmt.Errorf("mail relay address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
