package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitSchema, downInitSchema)
}

var initTables = []struct {
	name    string
	ddl     string
	indexes []string
}{
	{"personal_info", `
	CREATE TABLE IF NOT EXISTS personal_info (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT, title TEXT, tagline TEXT, subtitle TEXT,
		email TEXT, phone TEXT, location TEXT,
		bio TEXT, quote TEXT, book TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, nil},
	{"social_links", `
	CREATE TABLE IF NOT EXISTS social_links (
		id VARCHAR(36) PRIMARY KEY,
		website TEXT, magazine TEXT, facebook TEXT,
		linkedin TEXT, instagram TEXT, twitter TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, nil},
	{"skills", `
	CREATE TABLE IF NOT EXISTS skills (
		id VARCHAR(36) PRIMARY KEY,
		name TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 0 CHECK (level BETWEEN 0 AND 100),
		years TEXT,
		category TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, nil},
	{"experience", `
	CREATE TABLE IF NOT EXISTS experience (
		id VARCHAR(36) PRIMARY KEY,
		title TEXT NOT NULL, company TEXT, location TEXT,
		period TEXT, type TEXT, description TEXT,
		highlights TEXT NOT NULL DEFAULT '[]',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, nil},
	{"projects", `
	CREATE TABLE IF NOT EXISTS projects (
		id VARCHAR(36) PRIMARY KEY,
		title TEXT NOT NULL, category TEXT, year TEXT,
		description TEXT, image TEXT,
		tags TEXT NOT NULL DEFAULT '[]',
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, nil},
	{"awards", `
	CREATE TABLE IF NOT EXISTS awards (
		id VARCHAR(36) PRIMARY KEY,
		title TEXT NOT NULL, organization TEXT, year TEXT, description TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, nil},
	{"portfolio_images", `
	CREATE TABLE IF NOT EXISTS portfolio_images (
		id VARCHAR(36) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(50) NOT NULL,
		image_url VARCHAR(500),
		thumbnail_url VARCHAR(500),
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		storage_key VARCHAR(500),
		thumbnail_key VARCHAR(500),
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, []string{"CREATE INDEX IF NOT EXISTS idx_portfolio_images_category ON portfolio_images (category);"}},
	{"videos", `
	CREATE TABLE IF NOT EXISTS videos (
		id VARCHAR(36) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(50) NOT NULL,
		video_url VARCHAR(500),
		thumbnail_url VARCHAR(500),
		duration INTEGER NOT NULL DEFAULT 0,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		storage_key VARCHAR(500),
		thumbnail_key VARCHAR(500),
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`, []string{"CREATE INDEX IF NOT EXISTS idx_videos_category ON videos (category);"}},
}

func upInitSchema(ctx context.Context, tx *sql.Tx) error {
	for _, t := range initTables {
		if _, err := tx.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("could not create %s table: %w", t.name, err)
		}
		for _, idx := range t.indexes {
			if _, err := tx.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("could not index %s table: %w", t.name, err)
			}
		}
	}
	return nil
}

func downInitSchema(ctx context.Context, tx *sql.Tx) error {
	// Tabloları ters sırada sil
	for i := len(initTables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", initTables[i].name)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", initTables[i].name, err)
		}
	}
	return nil
}
