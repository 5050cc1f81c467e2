package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/models"
	"github.com/BruksfildServices01/construction-site/internal/partial"
)

// Ordered is the set of content models sorted by order_position.
type Ordered interface {
	models.Service | models.Project | models.TeamMember
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type ListFilter struct {
	ActiveOnly bool
	Scopes     []func(*gorm.DB) *gorm.DB
}

type OrderedGormRepository[T Ordered] struct {
	db *gorm.DB
}

func NewOrderedGormRepository[T Ordered](db *gorm.DB) *OrderedGormRepository[T] {
	return &OrderedGormRepository[T]{db: db}
}

func (r *OrderedGormRepository[T]) List(ctx context.Context, f ListFilter) ([]T, error) {
	q := r.db.WithContext(ctx).Scopes(f.Scopes...)
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var items []T
	if err := q.
		Order("order_position ASC").
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderedGormRepository[T]) Get(ctx context.Context, id uint, activeOnly bool) (*T, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var item T
	if err := q.First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// NextPosition returns one past the highest order_position in the table.
func (r *OrderedGormRepository[T]) NextPosition(ctx context.Context) (int, error) {
	var max int
	if err := r.db.WithContext(ctx).
		Model(new(T)).
		Select("COALESCE(MAX(order_position), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *OrderedGormRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *OrderedGormRepository[T]) Update(ctx context.Context, id uint, p *partial.Patch) (*T, error) {
	if err := p.Apply(ctx, r.db, new(T), id); err != nil {
		return nil, translate(err)
	}
	return r.Get(ctx, id, false)
}

func (r *OrderedGormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type positionRow struct {
	ID            uint
	OrderPosition int
}

// Move swaps the row with its neighbour in display order. Positions of the
// whole table are renumbered 1..n first so duplicates cannot stall a move.
// Moving past either end leaves the order unchanged.
func (r *OrderedGormRepository[T]) Move(ctx context.Context, id uint, dir Direction) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []positionRow
		if err := forUpdate(tx.Model(new(T))).
			Select("id", "order_position").
			Order("order_position ASC").
			Order("id ASC").
			Find(&rows).Error; err != nil {
			return err
		}

		idx := -1
		for i, row := range rows {
			if row.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrNotFound
		}

		target := idx - 1
		if dir == Down {
			target = idx + 1
		}
		if target >= 0 && target < len(rows) {
			rows[idx], rows[target] = rows[target], rows[idx]
		}

		for i, row := range rows {
			want := i + 1
			if row.OrderPosition == want {
				continue
			}
			if err := tx.Model(new(T)).
				Where("id = ?", row.ID).
				UpdateColumn("order_position", want).Error; err != nil {
				return fmt.Errorf("renumber %d: %w", row.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	return r.Get(ctx, id, false)
}
