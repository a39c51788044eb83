package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-api/internal/config"
)

func TestStripeCreatePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("path = %q, want /v1/payment_intents", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("authorization header = %q", got)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "1050" {
			t.Errorf("amount = %q, want 1050", got)
		}
		if got := r.PostForm.Get("currency"); got != "usd" {
			t.Errorf("currency = %q, want usd", got)
		}
		if got := r.PostForm.Get("payment_method_types[]"); got != "card" {
			t.Errorf("payment_method_types = %q, want card", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_x","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	gateway := NewStripeClient(&config.Stripe{
		BaseApiURL: srv.URL,
		SecretKey:  "sk_test_123",
	})

	secret, err := gateway.CreatePaymentIntent(context.Background(), 10.50)
	if err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}
	if secret != "pi_1_secret_x" {
		t.Errorf("clientSecret = %q, want pi_1_secret_x", secret)
	}
}

func TestStripeCreatePaymentIntentProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Amount must convert to at least 50 cents."}}`))
	}))
	defer srv.Close()

	gateway := NewStripeClient(&config.Stripe{
		BaseApiURL: srv.URL,
		SecretKey:  "sk_test_123",
	})

	if _, err := gateway.CreatePaymentIntent(context.Background(), 0.01); err == nil {
		t.Fatal("provider rejection did not surface as an error")
	}
}

func TestStripeCreatePaymentIntentBadPriceSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider was called for an invalid price")
	}))
	defer srv.Close()

	gateway := NewStripeClient(&config.Stripe{
		BaseApiURL: srv.URL,
		SecretKey:  "sk_test_123",
	})

	if _, err := gateway.CreatePaymentIntent(context.Background(), -5); err == nil {
		t.Fatal("negative price was accepted")
	}
}
