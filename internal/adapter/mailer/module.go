package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/strandart/shop/internal/config"
)

// Module exposes the mail relay client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.MailRelayAddress, p.Config.MailSender, p.Logger)
}
