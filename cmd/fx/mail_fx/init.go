package mail_fx

import (
	"go.uber.org/fx"

	"fixitfast/internal/config"
	"fixitfast/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	return services.NewSMTPMailService(cfg)
}
