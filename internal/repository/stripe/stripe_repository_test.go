package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolsPlaza/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent_ConvertsToMinorUnits(t *testing.T) {
	var gotAmount, gotCurrency string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAmount = r.FormValue("amount")
		gotCurrency = r.FormValue("currency")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_abc"}`))
	}))
	defer srv.Close()

	repo := NewStripeRepository(StripeConfig{StripeApi: "sk_test", StripeUrl: srv.URL})

	secret, err := repo.CreatePaymentIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_abc", secret)
	assert.Equal(t, "1999", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
}

func TestCreatePaymentIntent_InvalidAmount(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	repo := NewStripeRepository(StripeConfig{StripeApi: "sk_test", StripeUrl: srv.URL})

	for _, price := range []float64{0, -5} {
		_, err := repo.CreatePaymentIntent(context.Background(), price)
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount), "price %v", price)
	}
	assert.False(t, called, "gateway must not be called for invalid amounts")
}

func TestCreatePaymentIntent_GatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := NewStripeRepository(StripeConfig{StripeApi: "sk_test", StripeUrl: srv.URL})

	_, err := repo.CreatePaymentIntent(context.Background(), 10)
	assert.True(t, errors.Is(err, domain.ErrGatewayUnavailable))
}

func TestCreatePaymentIntent_GatewayUnreachable(t *testing.T) {
	repo := NewStripeRepository(StripeConfig{StripeApi: "sk_test", StripeUrl: "http://127.0.0.1:1"})

	_, err := repo.CreatePaymentIntent(context.Background(), 10)
	assert.True(t, errors.Is(err, domain.ErrGatewayUnavailable))
}
