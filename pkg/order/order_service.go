package order

import (
	"context"
	"errors"

	"topup-store/domain"
	"topup-store/entities"
	"topup-store/pkg/store"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*entities.Order, error)
		GetAllOrders(ctx context.Context) ([]entities.Order, error)
		GetOrder(ctx context.Context, id string) (*entities.Order, error)
		GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) (*entities.Order, error)
	}

	orderService struct {
		store store.Store
	}
)

func NewOrderService(st store.Store) OrderService {
	return &orderService{
		store: st,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*entities.Order, error) {
	order := &entities.Order{
		UserID:            req.UserID,
		ProductID:         req.ProductID,
		ProductName:       req.ProductName,
		Price:             req.Price,
		SelectedPackage:   req.SelectedPackage,
		PaymentMethod:     req.PaymentMethod,
		PaymentProofImage: req.PaymentProofImage,
		UserPhone:         req.UserPhone,
		UserGameID:        req.UserGameID,
		Status:            req.Status,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]entities.Order, error) {
	return s.store.GetAllOrders(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.store.GetUserOrders(ctx, userID)
}

// UpdateOrderStatus only accepts the three known states. Applying the
// same status twice is a no-op with the same final state.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status string) (*entities.Order, error) {
	switch status {
	case entities.OrderStatusPending, entities.OrderStatusCompleted, entities.OrderStatusCancelled:
	default:
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
