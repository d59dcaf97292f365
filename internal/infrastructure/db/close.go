package db

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func closer(database *gorm.DB, logger *zap.Logger) func() {
	return func() {
		sqlDB, err := database.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}
}
