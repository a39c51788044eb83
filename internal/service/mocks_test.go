package service

import (
	"context"

	"bistro-api/internal/model"
)

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *model.User) error
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	findAllFn     func(ctx context.Context) ([]*model.User, error)
	grantAdminFn  func(ctx context.Context, id uint) (int64, error)
	deleteFn      func(ctx context.Context, id uint) (int64, error)
	countFn       func(ctx context.Context) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) GrantAdmin(ctx context.Context, id uint) (int64, error) {
	return m.grantAdminFn(ctx, id)
}
func (m *mockUserRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockMenuRepo struct {
	createFn   func(ctx context.Context, item *model.MenuItem) error
	updateFn   func(ctx context.Context, id uint, item *model.MenuItem) (int64, error)
	deleteFn   func(ctx context.Context, id uint) (int64, error)
	findManyFn func(ctx context.Context, ids []uint) ([]*model.MenuItem, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (m *mockMenuRepo) Create(ctx context.Context, item *model.MenuItem) error {
	return m.createFn(ctx, item)
}
func (m *mockMenuRepo) Update(ctx context.Context, id uint, item *model.MenuItem) (int64, error) {
	return m.updateFn(ctx, id, item)
}
func (m *mockMenuRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockMenuRepo) FindMany(ctx context.Context, ids []uint) ([]*model.MenuItem, error) {
	return m.findManyFn(ctx, ids)
}
func (m *mockMenuRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockCartRepo struct {
	createFn      func(ctx context.Context, item *model.CartItem) error
	findByEmailFn func(ctx context.Context, email string) ([]*model.CartItem, error)
	deleteFn      func(ctx context.Context, id uint) (int64, error)
	deleteManyFn  func(ctx context.Context, ids []uint) (int64, error)
}

func (m *mockCartRepo) Create(ctx context.Context, item *model.CartItem) error {
	return m.createFn(ctx, item)
}
func (m *mockCartRepo) FindByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockCartRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return m.deleteFn(ctx, id)
}
func (m *mockCartRepo) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	return m.deleteManyFn(ctx, ids)
}

type mockPaymentRepo struct {
	createFn       func(ctx context.Context, payment *model.Payment) error
	findByEmailFn  func(ctx context.Context, email string) ([]*model.Payment, error)
	findAllFn      func(ctx context.Context) ([]*model.Payment, error)
	countFn        func(ctx context.Context) (int64, error)
	totalRevenueFn func(ctx context.Context) (float64, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	return m.createFn(ctx, payment)
}
func (m *mockPaymentRepo) FindByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockPaymentRepo) FindAll(ctx context.Context) ([]*model.Payment, error) {
	return m.findAllFn(ctx)
}
func (m *mockPaymentRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}
func (m *mockPaymentRepo) TotalRevenue(ctx context.Context) (float64, error) {
	return m.totalRevenueFn(ctx)
}

type mockGateway struct {
	createIntentFn func(ctx context.Context, price float64) (string, error)
}

func (m *mockGateway) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	return m.createIntentFn(ctx, price)
}
