package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentGateway creates a provider-side payment authorization and returns a
// client-usable secret. Nothing is persisted at this stage.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// toMinorUnits converts a major-currency price to minor units, rounding to
// the nearest cent. Providers reject zero and negative amounts, so fail fast
// before the network call.
func toMinorUnits(price float64) (int64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("price must be positive, got %v", price)
	}

	cents := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	return cents, nil
}
