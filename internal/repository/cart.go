package repository

import (
	"context"

	"bistro-api/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Delete(ctx context.Context, id uint) (int64, error)
	// DeleteMany removes every cart item whose id is in ids and reports how
	// many rows actually went away; already-deleted ids are not an error.
	DeleteMany(ctx context.Context, ids []uint) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}

func (r *cartRepoImpl) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}
