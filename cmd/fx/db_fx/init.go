package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fixitfast/internal/config"
	"fixitfast/internal/infra"
	"fixitfast/internal/models/db_models"
	"fixitfast/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrate),
)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Complaint{},
		&db_models.StatusHistoryEntry{},
		&db_models.Feedback{},
		&db_models.AttendanceEntry{},
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("database migration failed")
	}
}
