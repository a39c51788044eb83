package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bistro-api/internal/client"
	"bistro-api/internal/dto"
	"bistro-api/internal/model"
	"bistro-api/internal/repository"

	"github.com/google/uuid"
)

type PaymentService interface {
	// CreatePaymentIntent authorizes a provider-side payment for the given
	// price and returns the client secret. Nothing is persisted.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	// Settle records the completed payment and clears the purchased cart
	// items. The two sub-steps are reported independently: a written record
	// with a partially cleared cart is a visible outcome, not an error.
	Settle(ctx context.Context, payment *model.Payment) (*dto.SettleResult, error)
	HistoryByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

type paymentServiceImpl struct {
	gateway     client.PaymentGateway
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
}

func NewPaymentService(
	gateway client.PaymentGateway,
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
) PaymentService {
	return &paymentServiceImpl{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
	}
}

func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	clientSecret, err := s.gateway.CreatePaymentIntent(ctx, price)
	if err != nil {
		return "", fmt.Errorf("gateway create payment intent: %w", err)
	}

	return clientSecret, nil
}

func (s *paymentServiceImpl) Settle(ctx context.Context, payment *model.Payment) (*dto.SettleResult, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("insert payment record: %w", err)
	}

	result := &dto.SettleResult{
		PaymentResult: dto.InsertResult{InsertedID: payment.ID},
	}

	// The record is already durable at this point. A failed cart cleanup is
	// reported in the delete sub-result so the caller can reconcile; it must
	// not roll back or mask the ledger insert.
	deleted, err := s.cartRepo.DeleteMany(ctx, payment.CartIDs)
	if err != nil {
		slog.Error("settlement cart cleanup failed",
			"payment_id", payment.ID,
			"error", err,
		)
		result.DeleteResult = dto.DeleteResult{
			DeletedCount: 0,
			Message:      "cart cleanup failed",
		}
		return result, nil
	}

	result.DeleteResult = dto.DeleteResult{DeletedCount: deleted}
	return result, nil
}

func (s *paymentServiceImpl) HistoryByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return s.paymentRepo.FindByEmail(ctx, email)
}
