package db

import (
	"context"
	"fmt"

	"portfolio/internal/domain/entities"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate( //* yeni entity eklenirse buraya da eklenmeli
		&entities.PersonalInfo{},
		&entities.SocialLinks{},
		&entities.Skill{},
		&entities.Experience{},
		&entities.Project{},
		&entities.Award{},
		&entities.Image{},
		&entities.Video{},
	)
}

// RunMigrations applies the registered goose migrations (see package migrations).
func RunMigrations(ctx context.Context, db *gorm.DB, dir string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sql.DB alınamadı: %w", err)
	}
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
