package orders

import (
	"context"
	"errors"

	"toolsPlaza/domain"

	"github.com/go-playground/validator/v10"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	Insert(ctx context.Context, order domain.Order) (string, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	MarkPaid(ctx context.Context, id, transactionID string) (bool, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// PaymentsRepository contract interface
type PaymentsRepository interface {
	Insert(ctx context.Context, payment domain.Payment) (string, error)
}

type ordersService struct {
	ordersRepo   OrdersRepository
	paymentsRepo PaymentsRepository
	validate     *validator.Validate
}

func NewOrdersService(ordersRepo OrdersRepository, paymentsRepo PaymentsRepository, validate *validator.Validate) *ordersService {
	return &ordersService{
		ordersRepo:   ordersRepo,
		paymentsRepo: paymentsRepo,
		validate:     validate,
	}
}

func (s *ordersService) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	if err := s.validate.Var(order.Email, "required,email"); err != nil {
		return "", errors.New("order email is required")
	}
	if err := s.validate.Var(order.ToolID, "required"); err != nil {
		return "", errors.New("order tool reference is required")
	}

	// New orders always start unpaid.
	order.Paid = false
	order.TransactionID = ""

	return s.ordersRepo.Insert(ctx, order)
}

// GetOrdersByEmail lists a user's orders newest-first.
func (s *ordersService) GetOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return s.ordersRepo.FindByEmail(ctx, email)
}

func (s *ordersService) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.ordersRepo.FindByID(ctx, id)
}

// ConfirmPayment flips the order to paid and records the payment receipt.
// The flip is conditional on the order still being unpaid, so replaying a
// confirmation leaves exactly one paid order and one receipt in place.
// Returns whether this call performed the transition.
func (s *ordersService) ConfirmPayment(ctx context.Context, orderID, transactionID string) (bool, error) {
	flipped, err := s.ordersRepo.MarkPaid(ctx, orderID, transactionID)
	if err != nil {
		return false, err
	}
	if !flipped {
		return false, nil
	}

	order, err := s.ordersRepo.FindByID(ctx, orderID)
	if err != nil {
		return true, err
	}

	_, err = s.paymentsRepo.Insert(ctx, domain.Payment{
		OrderID:       orderID,
		TransactionID: transactionID,
		Amount:        order.Price,
		Email:         order.Email,
	})
	if err != nil {
		return true, err
	}

	return true, nil
}

func (s *ordersService) DeleteOrder(ctx context.Context, id string) (int64, error) {
	return s.ordersRepo.DeleteByID(ctx, id)
}
