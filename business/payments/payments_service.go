package payments

import (
	"context"
)

// PaymentGateway contract interface
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type paymentsService struct {
	gateway PaymentGateway
}

func NewPaymentsService(gateway PaymentGateway) *paymentsService {
	return &paymentsService{
		gateway: gateway,
	}
}

// CreatePaymentIntent forwards the price to the gateway and returns the
// opaque client secret used to complete the charge client-side.
func (s *paymentsService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	return s.gateway.CreatePaymentIntent(ctx, price)
}
