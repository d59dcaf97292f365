package repositories

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

type ListFilter struct {
	Category string // boşsa filtre yok
}

// CollectionRepository stores an ordered list resource. List returns items
// sorted by order ascending, ties broken by creation time.
type CollectionRepository[T any] interface {
	List(ctx context.Context, filter ListFilter) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Save(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SingletonRepository stores a resource with at most one record.
type SingletonRepository[T any] interface {
	Get(ctx context.Context) (*T, error)
	Save(ctx context.Context, item *T) error
}
