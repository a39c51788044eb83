package service

import (
	"context"
	"fmt"

	"bistro-api/internal/dto"
	"bistro-api/internal/model"
	"bistro-api/internal/repository"
)

type UserService interface {
	// CreateUser inserts a user keyed by email. A duplicate email is an
	// idempotent no-op reported in the result payload, not an error.
	CreateUser(ctx context.Context, user *model.User) (*dto.InsertResult, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	// IsAdmin resolves the admin capability for a verified identity. An
	// absent user resolves to false.
	IsAdmin(ctx context.Context, email string) (bool, error)
	GrantAdmin(ctx context.Context, id uint) (*dto.UpdateResult, error)
	DeleteUser(ctx context.Context, id uint) (*dto.DeleteResult, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(
	userRepo repository.UserRepository,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, user *model.User) (*dto.InsertResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return &dto.InsertResult{Message: "user already exist", InsertedID: nil}, nil
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &dto.InsertResult{InsertedID: user.ID}, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("find user by email: %w", err)
	}

	return user.IsAdmin(), nil
}

func (s *userServiceImpl) GrantAdmin(ctx context.Context, id uint) (*dto.UpdateResult, error) {
	modified, err := s.userRepo.GrantAdmin(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("grant admin role: %w", err)
	}

	return &dto.UpdateResult{ModifiedCount: modified}, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id uint) (*dto.DeleteResult, error) {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
