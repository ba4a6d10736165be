package db

import (
	"anonboard/internal/app/thread"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&thread.Thread{}); err != nil {
		return err
	}
	logger.Info("Database migrations applied")
	return nil
}
