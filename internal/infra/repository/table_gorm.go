package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JGuylherme/Service-POS/internal/domain/pos"
)

// naturalOrder lists rows in insertion order.
const naturalOrder = "created_at ASC, id ASC"

// tableGormRepository implements pos.Repository for one model type.
// columns lists what Update rewrites; updated_at is always refreshed.
type tableGormRepository[T any] struct {
	db      *gorm.DB
	order   string
	columns []string
}

func newTable[T any](db *gorm.DB, order string, columns ...string) tableGormRepository[T] {
	return tableGormRepository[T]{
		db:      db,
		order:   order,
		columns: append(columns, "updated_at"),
	}
}

func (r tableGormRepository[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.db.WithContext(ctx).
		Order(r.order).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r tableGormRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pos.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r tableGormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(entity).Error; err != nil {
		return err
	}
	return nil
}

func (r tableGormRepository[T]) Update(ctx context.Context, entity *T) error {
	res := r.db.WithContext(ctx).
		Model(entity).
		Select(r.columns).
		Updates(entity)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrMissingWhereClause) {
			return pos.ErrNotFound
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pos.ErrNotFound
	}
	return nil
}

func (r tableGormRepository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return fmt.Errorf("%w: %v", pos.ErrInUse, res.Error)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pos.ErrNotFound
	}
	return nil
}
