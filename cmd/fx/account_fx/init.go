package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fixitfast/internal/config"
	"fixitfast/internal/repositories"
	"fixitfast/internal/services"
	mem "fixitfast/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService services.IMailService,
	cfg *config.Config,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService, cfg)
}
