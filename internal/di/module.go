package di

import (
	"go.uber.org/fx"

	"github.com/strandart/shop/internal/adapter/mailer"
	"github.com/strandart/shop/internal/app"
	"github.com/strandart/shop/internal/config"
	"github.com/strandart/shop/internal/logger"
	"github.com/strandart/shop/internal/pkg/auth"
	"github.com/strandart/shop/internal/server/http/handlers"
	"github.com/strandart/shop/internal/server/http/router"
	"github.com/strandart/shop/internal/storage/postgres"
	"github.com/strandart/shop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(client mailer.Client) usecase.Mailer { return client }),
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
