package service

import (
	"context"
	"fmt"

	"bistro-api/internal/dto"
	"bistro-api/internal/model"
	"bistro-api/internal/repository"
)

type CartService interface {
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Add(ctx context.Context, item *model.CartItem) (*dto.InsertResult, error)
	Remove(ctx context.Context, id uint) (*dto.DeleteResult, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

func (s *cartServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	return s.cartRepo.FindByEmail(ctx, email)
}

func (s *cartServiceImpl) Add(ctx context.Context, item *model.CartItem) (*dto.InsertResult, error) {
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}

	return &dto.InsertResult{InsertedID: item.ID}, nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, id uint) (*dto.DeleteResult, error) {
	deleted, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}

	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
