package service

import (
	"Storefront/apperr"
	"Storefront/models"
	"Storefront/repository"
	"context"
	"strings"

	"github.com/rs/zerolog"
)

type OrderService struct {
	store  *repository.Store
	logger zerolog.Logger
}

func NewOrderService(store *repository.Store, logger zerolog.Logger) *OrderService {
	return &OrderService{store: store, logger: logger}
}

// List returns the user's orders, newest first, without their lines.
func (s *OrderService) List(ctx context.Context, userID uint) ([]models.OrderResponse, error) {
	orders, err := s.store.Orders.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, orders[i].ToResponse(nil))
	}
	return resp, nil
}

// Get treats another user's order as missing.
func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (models.OrderResponse, error) {
	order, err := s.store.Orders.FindForUser(ctx, userID, orderID)
	if err != nil {
		return models.OrderResponse{}, err
	}
	lines, err := s.store.Carts.ForOrder(ctx, order.ID)
	if err != nil {
		return models.OrderResponse{}, err
	}
	return order.ToResponse(lines), nil
}

// UpdateStatus accepts any non-empty status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) (models.OrderResponse, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return models.OrderResponse{}, apperr.Validation("Status is required")
	}
	if len(status) > 64 {
		return models.OrderResponse{}, apperr.Validation("Status must be at most 64 characters")
	}

	order, err := s.store.Orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return models.OrderResponse{}, err
	}

	loggerFrom(ctx, &s.logger).Info().
		Uint("order_id", order.ID).
		Str("status", status).
		Msg("order status changed")
	return order.ToResponse(nil), nil
}
