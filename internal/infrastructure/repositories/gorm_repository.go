package repositories

import (
	"context"
	"errors"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormCollection[T any] struct {
	db *gorm.DB
}

func NewGormCollection[T any](db *gorm.DB) repositories.CollectionRepository[T] {
	return &gormCollection[T]{db: db}
}

func (r *gormCollection[T]) List(ctx context.Context, filter repositories.ListFilter) ([]T, error) {
	items := make([]T, 0)
	q := r.db.WithContext(ctx).Model(new(T))
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if err := q.Order("sort_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *gormCollection[T]) Create(ctx context.Context, item *T) error {
	assignID(item)
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormCollection[T]) Save(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *gormCollection[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *gormCollection[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

type gormSingleton[T any] struct {
	db *gorm.DB
}

func NewGormSingleton[T any](db *gorm.DB) repositories.SingletonRepository[T] {
	return &gormSingleton[T]{db: db}
}

func (r *gormSingleton[T]) Get(ctx context.Context) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).Order("created_at asc").First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *gormSingleton[T]) Save(ctx context.Context, item *T) error {
	if meta := entities.MetaOf(item); meta != nil && meta.ID == "" {
		assignID(item)
		return r.db.WithContext(ctx).Create(item).Error
	}
	return r.db.WithContext(ctx).Save(item).Error
}

func assignID(item any) {
	if meta := entities.MetaOf(item); meta != nil && meta.ID == "" {
		meta.ID = uuid.NewString()
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
