package service

import (
	"context"
	"fmt"

	"bistro-api/internal/dto"
	"bistro-api/internal/model"
	"bistro-api/internal/repository"
)

type MenuService interface {
	AddItem(ctx context.Context, item *model.MenuItem) (*dto.InsertResult, error)
	UpdateItem(ctx context.Context, id uint, item *model.MenuItem) (*dto.UpdateResult, error)
	DeleteItem(ctx context.Context, id uint) (*dto.DeleteResult, error)
}

type menuServiceImpl struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(
	menuRepo repository.MenuRepository,
) MenuService {
	return &menuServiceImpl{
		menuRepo: menuRepo,
	}
}

func (s *menuServiceImpl) AddItem(ctx context.Context, item *model.MenuItem) (*dto.InsertResult, error) {
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	return &dto.InsertResult{InsertedID: item.ID}, nil
}

func (s *menuServiceImpl) UpdateItem(ctx context.Context, id uint, item *model.MenuItem) (*dto.UpdateResult, error) {
	modified, err := s.menuRepo.Update(ctx, id, item)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	return &dto.UpdateResult{ModifiedCount: modified}, nil
}

func (s *menuServiceImpl) DeleteItem(ctx context.Context, id uint) (*dto.DeleteResult, error) {
	deleted, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete menu item: %w", err)
	}

	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
