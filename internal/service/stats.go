package service

import (
	"context"
	"fmt"
	"sort"

	"bistro-api/internal/dto"
	"bistro-api/internal/model"
	"bistro-api/internal/repository"
)

type StatsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
	// OrderStats expands every payment's menu item list into one row per
	// item, resolves category and price against the menu store, and groups
	// by category. Ids that no longer resolve to a menu item are dropped.
	OrderStats(ctx context.Context) ([]*dto.CategoryStat, error)
}

type statsServiceImpl struct {
	userRepo    repository.UserRepository
	menuRepo    repository.MenuRepository
	paymentRepo repository.PaymentRepository
}

func NewStatsService(
	userRepo repository.UserRepository,
	menuRepo repository.MenuRepository,
	paymentRepo repository.PaymentRepository,
) StatsService {
	return &statsServiceImpl{
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *statsServiceImpl) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	menuItems, err := s.menuRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}

	orders, err := s.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum payment revenue: %w", err)
	}

	return &dto.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

func (s *statsServiceImpl) OrderStats(ctx context.Context) ([]*dto.CategoryStat, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	idSet := map[uint]struct{}{}
	for _, payment := range payments {
		for _, menuItemID := range payment.MenuItemIDs {
			idSet[menuItemID] = struct{}{}
		}
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var menuItems []*model.MenuItem
	if len(ids) > 0 {
		menuItems, err = s.menuRepo.FindMany(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load menu items: %w", err)
		}
	}

	itemsByID := make(map[uint]*model.MenuItem, len(menuItems))
	for _, item := range menuItems {
		itemsByID[item.ID] = item
	}

	groups := map[string]*dto.CategoryStat{}
	for _, payment := range payments {
		for _, menuItemID := range payment.MenuItemIDs {
			item, ok := itemsByID[menuItemID]
			if !ok {
				continue
			}

			group, ok := groups[item.Category]
			if !ok {
				group = &dto.CategoryStat{Category: item.Category}
				groups[item.Category] = group
			}
			group.Quantity++
			group.Revenue += item.Price
		}
	}

	stats := make([]*dto.CategoryStat, 0, len(groups))
	for _, group := range groups {
		stats = append(stats, group)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Category < stats[j].Category
	})

	return stats, nil
}
