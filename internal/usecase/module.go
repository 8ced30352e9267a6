package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/strandart/shop/internal/config"
	"github.com/strandart/shop/internal/domain/repository"
	pkgAuth "github.com/strandart/shop/internal/pkg/auth"
)

type authParams struct {
	fx.In

	Users     repository.UserRepository
	Passcodes repository.PasscodeRepository
	Hasher    pkgAuth.PasswordHasher
	Strategy  pkgAuth.Strategy
	Mailer    Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

func newAuthUseCase(p authParams) *AuthUseCase {
	return NewAuthUseCase(p.Users, p.Passcodes, p.Hasher, p.Strategy, p.Mailer, p.Config.PasscodeTTL, p.Logger)
}

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newAuthUseCase,
	NewCatalogUseCase,
	NewCartUseCase,
	NewCheckoutUseCase,
	NewOrderUseCase,
	NewReviewUseCase,
	NewAddressUseCase,
	NewAnalyticsUseCase,
)
