package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"portfolio/internal/domain/entities"
	"portfolio/internal/domain/repositories"
)

type positioned interface {
	Position() int
}

type categorized interface {
	GetCategory() string
}

// InMemoryCollection keeps records in a map. Used with DB_DRIVER=memory and in tests.
type InMemoryCollection[T any] struct {
	mu   sync.RWMutex
	data map[string]T
	now  func() time.Time
}

func NewInMemoryCollection[T any]() *InMemoryCollection[T] {
	return &InMemoryCollection[T]{
		data: make(map[string]T),
		now:  time.Now,
	}
}

func (r *InMemoryCollection[T]) List(_ context.Context, filter repositories.ListFilter) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.data))
	for _, item := range r.data {
		// Kategori filtresi varsa
		if filter.Category != "" {
			c, ok := any(item).(categorized)
			if !ok || c.GetCategory() != filter.Category {
				continue
			}
		}
		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		pi, pj := position(&result[i]), position(&result[j])
		if pi != pj {
			return pi < pj
		}
		return createdAt(&result[i]).Before(createdAt(&result[j]))
	})
	return result, nil
}

func (r *InMemoryCollection[T]) Get(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.data[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &item, nil
}

func (r *InMemoryCollection[T]) Create(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(item)
	meta := entities.MetaOf(item)
	now := r.now()
	meta.CreatedAt, meta.UpdatedAt = now, now
	r.data[meta.ID] = *item
	return nil
}

func (r *InMemoryCollection[T]) Save(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(item)
	meta := entities.MetaOf(item)
	meta.UpdatedAt = r.now() // kayıt değiştiğinde updated_at güncelle
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = meta.UpdatedAt
	}
	r.data[meta.ID] = *item
	return nil
}

func (r *InMemoryCollection[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *InMemoryCollection[T]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.data)), nil
}

// InMemorySingleton holds at most one record.
type InMemorySingleton[T any] struct {
	mu   sync.RWMutex
	item *T
}

func NewInMemorySingleton[T any]() *InMemorySingleton[T] {
	return &InMemorySingleton[T]{}
}

func (r *InMemorySingleton[T]) Get(_ context.Context) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.item == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *r.item
	return &cp, nil
}

func (r *InMemorySingleton[T]) Save(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	assignID(item)
	meta := entities.MetaOf(item)
	meta.UpdatedAt = time.Now()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = meta.UpdatedAt
	}
	cp := *item
	r.item = &cp
	return nil
}

func position(v any) int {
	if p, ok := v.(positioned); ok {
		return p.Position()
	}
	return 0
}

func createdAt(v any) time.Time {
	if m := entities.MetaOf(v); m != nil {
		return m.CreatedAt
	}
	return time.Time{}
}
