package client

import (
	"context"
	"fmt"

	"bistro-api/internal/config"

	"github.com/braintree-go/braintree-go"
)

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeClient initializes the Braintree SDK gateway. Braintree's
// client-side flow uses a client token where Stripe uses an intent secret.
func NewBraintreeClient(cfg *config.Braintree) PaymentGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeClientImpl{
		gateway: gateway,
	}
}

func (c *braintreeClientImpl) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if _, err := toMinorUnits(price); err != nil {
		return "", err
	}

	token, err := c.gateway.ClientToken().Generate(ctx)
	if err != nil {
		return "", fmt.Errorf("braintree generate client token: %w", err)
	}

	return token, nil
}
