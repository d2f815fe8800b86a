package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fixitfast/internal/config"
	"fixitfast/pkg/logger"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("error connecting to database")
	}
	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing database connection")
	}
}
