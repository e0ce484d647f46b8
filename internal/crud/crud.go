package crud

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/apperr"

	"gorm.io/gorm"
)

// Store is the one generic find/create/update/delete component shared by the
// simple record entities. T is the gorm model; entity services embed a Store
// and add their own operations on top.
type Store[T any] struct {
	DB *gorm.DB

	// Order is the default list ordering; newest first when empty.
	Order string
}

func (s *Store[T]) order() string {
	if s.Order != "" {
		return s.Order
	}
	return "created_at desc"
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := s.DB.WithContext(ctx).Order(s.order()).Find(&out).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

func (s *Store[T]) Get(ctx context.Context, id uint64) (T, error) {
	var out T
	err := s.DB.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, apperr.New(apperr.CodeNotFound, "record not found")
	}
	if err != nil {
		return out, apperr.Wrap(apperr.CodeDatabase, "lookup failed", err)
	}
	return out, nil
}

func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		if IsDuplicate(err) {
			return apperr.New(apperr.CodeAlreadyExists, "record already exists")
		}
		return apperr.Wrap(apperr.CodeDatabase, "create failed", err)
	}
	return nil
}

// Update applies a partial patch; only the supplied columns change.
func (s *Store[T]) Update(ctx context.Context, id uint64, patch map[string]any) (T, error) {
	var out T
	if _, err := s.Get(ctx, id); err != nil {
		return out, err
	}
	if len(patch) > 0 {
		if err := s.DB.WithContext(ctx).Model(&out).Where("id = ?", id).Updates(patch).Error; err != nil {
			if IsDuplicate(err) {
				return out, apperr.New(apperr.CodeAlreadyExists, "record already exists")
			}
			return out, apperr.Wrap(apperr.CodeDatabase, "update failed", err)
		}
	}
	return s.Get(ctx, id)
}

func (s *Store[T]) Delete(ctx context.Context, id uint64) error {
	var model T
	res := s.DB.WithContext(ctx).Delete(&model, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.CodeDatabase, "delete failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "record not found")
	}
	return nil
}

// IsDuplicate reports whether err is a unique-constraint violation. Covers
// postgres (SQLSTATE 23505) and sqlite, which the tests run against.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
