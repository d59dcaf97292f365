package usecases

import (
	"context"
	"errors"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
	apperrors "portfolio/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Patch is a partial update: Apply copies only the fields that were set.
type Patch[T any] interface {
	Apply(item *T)
}

type ContentService[T any] interface {
	List(ctx context.Context, filter repositories.ListFilter) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, patch Patch[T]) (*T, error)
	Delete(ctx context.Context, id string) error
	Name() string
}

type contentService[T any] struct {
	repo   repositories.CollectionRepository[T]
	name   string // "Skill", "Experience" ...
	logger *zap.Logger
}

func NewContentService[T any](repo repositories.CollectionRepository[T], name string, logger *zap.Logger) ContentService[T] {
	return &contentService[T]{repo: repo, name: name, logger: logger}
}

func (s *contentService[T]) Name() string { return s.name }

func (s *contentService[T]) List(ctx context.Context, filter repositories.ListFilter) ([]T, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return items, nil
}

func (s *contentService[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := checkID(s.name, id); err != nil {
		return nil, err
	}
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.wrap(err)
	}
	return item, nil
}

func (s *contentService[T]) Create(ctx context.Context, item *T) (*T, error) {
	if meta := entities.MetaOf(item); meta != nil {
		*meta = entities.Base{}
	}
	if err := prepare(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	s.logger.Info("record created", zap.String("resource", s.name), zap.String("id", entities.MetaOf(item).ID))
	return item, nil
}

func (s *contentService[T]) Update(ctx context.Context, id string, patch Patch[T]) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	if err := prepare(item); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return item, nil
}

func (s *contentService[T]) Delete(ctx context.Context, id string) error {
	if err := checkID(s.name, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrap(err)
	}
	s.logger.Info("record deleted", zap.String("resource", s.name), zap.String("id", id))
	return nil
}

func (s *contentService[T]) wrap(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrNotFound(s.name)
	}
	return apperrors.ErrInternal(err)
}

type SingletonService[T any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, patch Patch[T]) (*T, error)
}

type singletonService[T any] struct {
	repo repositories.SingletonRepository[T]
	name string // "Personal information", "Social links"
}

func NewSingletonService[T any](repo repositories.SingletonRepository[T], name string) SingletonService[T] {
	return &singletonService[T]{repo: repo, name: name}
}

func (s *singletonService[T]) Get(ctx context.Context) (*T, error) {
	item, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotFound(s.name)
		}
		return nil, apperrors.ErrInternal(err)
	}
	return item, nil
}

// Update patches the existing record; it never creates one.
func (s *singletonService[T]) Update(ctx context.Context, patch Patch[T]) (*T, error) {
	item, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	if err := prepare(item); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return item, nil
}

func checkID(resource, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidID(resource, err)
	}
	return nil
}

func prepare(item any) error {
	if n, ok := item.(entities.Normalizer); ok {
		n.Normalize()
	}
	if v, ok := item.(entities.Validator); ok {
		if err := v.Validate(); err != nil {
			return apperrors.ErrValidation(err.Error(), err)
		}
	}
	return nil
}
