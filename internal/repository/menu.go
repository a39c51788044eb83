package repository

import (
	"context"

	"bistro-api/internal/model"

	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	Update(ctx context.Context, id uint, item *model.MenuItem) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	FindMany(ctx context.Context, ids []uint) ([]*model.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

type menuRepoImpl struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepoImpl{
		db: db,
	}
}

func (r *menuRepoImpl) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepoImpl) Update(ctx context.Context, id uint, item *model.MenuItem) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"recipe":   item.Recipe,
			"image":    item.Image,
		})

	return result.RowsAffected, result.Error
}

func (r *menuRepoImpl) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItem{})

	return result.RowsAffected, result.Error
}

func (r *menuRepoImpl) FindMany(ctx context.Context, ids []uint) ([]*model.MenuItem, error) {
	var items []*model.MenuItem
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *menuRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).Count(&count).Error
	return count, err
}
