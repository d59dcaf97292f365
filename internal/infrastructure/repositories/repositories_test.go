package repositories_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/infrastructure/db"
	infra_repo "portfolio/internal/infrastructure/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteRegistry(t *testing.T) *repositories.Registry {
	t.Helper()
	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database))
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return infra_repo.NewGormRegistry(database)
}

func registries(t *testing.T) map[string]*repositories.Registry {
	return map[string]*repositories.Registry{
		"gorm-sqlite": sqliteRegistry(t),
		"in-memory":   infra_repo.NewInMemoryRegistry(),
	}
}

func image(title, cat string, order int) *entities.Image {
	img := &entities.Image{Title: title, Category: cat, ImageURL: "/api/uploads/" + title}
	img.Order = order
	return img
}

func TestCollectionOrderingAndFilter(t *testing.T) {
	for name, repos := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repos.Images.Create(ctx, image("c", "fashion", 2)))
			require.NoError(t, repos.Images.Create(ctx, image("a", "fashion", 0)))
			require.NoError(t, repos.Images.Create(ctx, image("b", "covers", 1)))

			all, err := repos.Images.List(ctx, repositories.ListFilter{})
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].Title, all[1].Title, all[2].Title})

			fashion, err := repos.Images.List(ctx, repositories.ListFilter{Category: "fashion"})
			require.NoError(t, err)
			require.Len(t, fashion, 2)
			for _, img := range fashion {
				assert.Equal(t, "fashion", img.Category)
			}

			n, err := repos.Images.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(3), n)
		})
	}
}

func TestCollectionGetSaveDelete(t *testing.T) {
	for name, repos := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			exp := &entities.Experience{Title: "Photographer", Company: "Studio", Highlights: entities.StringList{"Vogue cover"}}
			require.NoError(t, repos.Experience.Create(ctx, exp))
			_, err := uuid.Parse(exp.ID)
			require.NoError(t, err)
			assert.False(t, exp.CreatedAt.IsZero())

			got, err := repos.Experience.Get(ctx, exp.ID)
			require.NoError(t, err)
			assert.Equal(t, entities.StringList{"Vogue cover"}, got.Highlights)

			got.Company = "Magazine"
			time.Sleep(5 * time.Millisecond)
			require.NoError(t, repos.Experience.Save(ctx, got))
			again, err := repos.Experience.Get(ctx, exp.ID)
			require.NoError(t, err)
			assert.Equal(t, "Magazine", again.Company)
			assert.True(t, again.UpdatedAt.After(exp.CreatedAt))

			require.NoError(t, repos.Experience.Delete(ctx, exp.ID))
			assert.ErrorIs(t, repos.Experience.Delete(ctx, exp.ID), repositories.ErrNotFound)
			_, err = repos.Experience.Get(ctx, exp.ID)
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestSingleton(t *testing.T) {
	for name, repos := range registries(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := repos.Personal.Get(ctx)
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			require.NoError(t, repos.Personal.Save(ctx, &entities.PersonalInfo{Name: "Jane"}))
			p, err := repos.Personal.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Jane", p.Name)

			p.Name = "Jane Doe"
			require.NoError(t, repos.Personal.Save(ctx, p))
			p2, err := repos.Personal.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "Jane Doe", p2.Name)
			assert.Equal(t, p.ID, p2.ID)
		})
	}
}
