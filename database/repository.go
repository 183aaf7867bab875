package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the persistence surface the HTTP handlers work against.
// Filters and updates are keyed by column name or Go field name.
type Repository[T any] interface {
	List(ctx context.Context, where map[string]any) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, v *T) error
	Update(ctx context.Context, id uint, updates map[string]any) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// GormRepository implements Repository on a GORM handle. It joins the request
// transaction when the context carries one.
type GormRepository[T any] struct {
	db      *gorm.DB
	preload []string
}

func NewRepository[T any](db *gorm.DB, preload ...string) *GormRepository[T] {
	return &GormRepository[T]{db: db, preload: preload}
}

func (r *GormRepository[T]) query(ctx context.Context) *gorm.DB {
	q := Conn(ctx, r.db)
	for _, p := range r.preload {
		q = q.Preload(p)
	}
	return q
}

func (r *GormRepository[T]) List(ctx context.Context, where map[string]any) ([]T, error) {
	out := []T{}
	q := r.query(ctx).Model(new(T))
	if len(where) > 0 {
		q = q.Where(where)
	}
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return out, nil
}

func (r *GormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var out T
	if err := r.query(ctx).First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %d: %w", id, err)
	}
	return &out, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, v *T) error {
	if err := Conn(ctx, r.db).Create(v).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Update applies a partial update and returns the reloaded row.
func (r *GormRepository[T]) Update(ctx context.Context, id uint, updates map[string]any) (*T, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := Conn(ctx, r.db).Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update %d: %w", id, err)
		}
	}
	return r.Get(ctx, id)
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := Conn(ctx, r.db).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
