package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"toolsPlaza/domain"
)

type StripeConfig struct {
	StripeApi string
	StripeUrl string
}

type StripeRepository struct {
	stripeConfig StripeConfig
	client       *http.Client
}

func NewStripeRepository(cfg StripeConfig) *StripeRepository {
	return &StripeRepository{
		stripeConfig: cfg,
		client:       &http.Client{Timeout: 15 * time.Second},
	}
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CreatePaymentIntent submits a card payment intent for the given price and
// returns the gateway's client secret. The price arrives in major units and
// is converted to cents before submission. Invalid amounts are rejected
// before any network call; the gateway is never retried here.
func (r *StripeRepository) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAmount, price)
	}

	amount := int64(math.Round(price * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.stripeConfig.StripeUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(r.stripeConfig.StripeApi, "")

	res, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, res.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(res.Body).Decode(&intent); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	return intent.ClientSecret, nil
}
