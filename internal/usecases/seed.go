package usecases

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/domain/repositories"
	"portfolio/internal/infrastructure/seed"

	"go.uber.org/zap"
)

type SeedService interface {
	// SeedDefaults writes each resource from data only when its store is empty.
	SeedDefaults(ctx context.Context, data *seed.Data) error
}

type seedService struct {
	repos  *repositories.Registry
	logger *zap.Logger
}

func NewSeedService(repos *repositories.Registry, logger *zap.Logger) SeedService {
	return &seedService{repos: repos, logger: logger}
}

func (s *seedService) SeedDefaults(ctx context.Context, data *seed.Data) error {
	if data == nil {
		return nil
	}

	if data.Personal != nil {
		if err := seedSingleton(ctx, s.repos.Personal, data.Personal); err != nil {
			return fmt.Errorf("seed personal: %w", err)
		}
	}
	if data.Social != nil {
		if err := seedSingleton(ctx, s.repos.Social, data.Social); err != nil {
			return fmt.Errorf("seed social: %w", err)
		}
	}
	if err := seedCollection(ctx, s.repos.Skills, data.Skills); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}
	if err := seedCollection(ctx, s.repos.Experience, data.Experience); err != nil {
		return fmt.Errorf("seed experience: %w", err)
	}
	if err := seedCollection(ctx, s.repos.Projects, data.Projects); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := seedCollection(ctx, s.repos.Awards, data.Awards); err != nil {
		return fmt.Errorf("seed awards: %w", err)
	}

	s.logger.Info("default data checked")
	return nil
}

func seedSingleton[T any](ctx context.Context, repo repositories.SingletonRepository[T], item *T) error {
	if _, err := repo.Get(ctx); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	cp := *item
	if err := prepare(&cp); err != nil {
		return err
	}
	return repo.Save(ctx, &cp)
}

func seedCollection[T any](ctx context.Context, repo repositories.CollectionRepository[T], items []T) error {
	if len(items) == 0 {
		return nil
	}
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for i := range items {
		item := items[i]
		if err := prepare(&item); err != nil {
			return err
		}
		if err := repo.Create(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}
