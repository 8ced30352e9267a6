package repository

import (
	"context"
	"time"

	"github.com/strandart/shop/internal/domain/model"
)

// PasscodeRepository stores pending one-time code challenges. Upsert
// replaces any live challenge for the same (email, purpose).
type PasscodeRepository interface {
	Upsert(ctx context.Context, email string, purpose model.PasscodePurpose, codeHash string, expiresAt time.Time) error
	Get(ctx context.Context, email string, purpose model.PasscodePurpose) (*model.PasscodeChallenge, error)
	Delete(ctx context.Context, email string, purpose model.PasscodePurpose) error
	PurgeExpired(ctx context.Context) (int64, error)
}
