package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nexusgo/foodtracker/backend/internal/optional"
)

// columnSet maps column names to the values a partial update writes.
type columnSet map[string]interface{}

func setIfPresent[T any](cols columnSet, column string, v optional.Value[T]) {
	if val, ok := v.Get(); ok {
		cols[column] = val
	}
}

// updateByID writes cols to the row identified by id in a single statement.
func updateByID(ctx context.Context, db *gorm.DB, model interface{}, id uint, cols columnSet) error {
	if len(cols) == 0 {
		return ErrEmptyUpdate
	}
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(map[string]interface{}(cols))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteByID removes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
