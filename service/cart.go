package service

import (
	"Storefront/apperr"
	"Storefront/models"
	"Storefront/repository"
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var errCartChanged = apperr.Conflict("Cart changed, please try again", nil)

type CartSummary struct {
	Items []models.CartResponse
	Total uint
}

type CartService struct {
	store  *repository.Store
	logger zerolog.Logger
}

func NewCartService(store *repository.Store, logger zerolog.Logger) *CartService {
	return &CartService{store: store, logger: logger}
}

// Add puts quantity units of productID in the user's cart, growing the
// existing line when there is one.
func (s *CartService) Add(ctx context.Context, userID, productID, quantity uint) (models.CartResponse, error) {
	if quantity == 0 {
		return models.CartResponse{}, apperr.Validation("Quantity must be at least 1")
	}

	var line *models.Cart
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		product, err := tx.Products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		line, err = tx.Carts.LockActiveLine(ctx, userID, productID)
		switch {
		case errors.Is(err, apperr.ErrCartItemNotFound):
			line = &models.Cart{
				ProductID: productID,
				UserID:    userID,
				Quantity:  quantity,
			}
			if err := tx.Carts.Create(ctx, line); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			line.Quantity += quantity
			updated, err := tx.Carts.UpdateQuantity(ctx, line.ID, line.Quantity)
			if err != nil {
				return err
			}
			if !updated {
				return errCartChanged
			}
		}

		line.Product = product
		return nil
	})
	if err != nil {
		return models.CartResponse{}, err
	}
	return line.ToResponse(), nil
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity uint) (models.CartResponse, error) {
	if quantity == 0 {
		return models.CartResponse{}, apperr.Validation("Quantity must be at least 1")
	}

	line, err := s.store.Carts.FindActiveLine(ctx, userID, productID)
	if err != nil {
		return models.CartResponse{}, err
	}
	// the line may have been checked out since it was read
	updated, err := s.store.Carts.UpdateQuantity(ctx, line.ID, quantity)
	if err != nil {
		return models.CartResponse{}, err
	}
	if !updated {
		return models.CartResponse{}, apperr.ErrCartItemNotFound
	}
	line.Quantity = quantity
	return line.ToResponse(), nil
}

func (s *CartService) Active(ctx context.Context, userID uint) (CartSummary, error) {
	lines, err := s.store.Carts.Active(ctx, userID)
	if err != nil {
		return CartSummary{}, err
	}

	summary := CartSummary{
		Items: make([]models.CartResponse, 0, len(lines)),
		Total: models.Total(lines),
	}
	for i := range lines {
		summary.Items = append(summary.Items, lines[i].ToResponse())
	}
	return summary, nil
}

// Checkout turns the active cart into a "Pending order" order in one
// transaction. Lines attached by a concurrent checkout abort this one.
func (s *CartService) Checkout(ctx context.Context, userID uint) (models.OrderResponse, error) {
	var order models.Order
	var lines []models.Cart

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		lines, err = tx.Carts.LockActive(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.ErrCartEmpty
		}

		order = models.Order{
			Amount: models.Total(lines),
			Status: models.StatusPendingOrder,
			UserID: &userID,
		}
		if err := tx.Orders.Create(ctx, &order); err != nil {
			return err
		}

		lineIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			lineIDs = append(lineIDs, line.ID)
		}
		attached, err := tx.Carts.AttachToOrder(ctx, lineIDs, order.ID)
		if err != nil {
			return err
		}
		if attached != int64(len(lineIDs)) {
			return errCartChanged
		}

		for i := range lines {
			lines[i].OrderID = &order.ID
		}
		return nil
	})
	if err != nil {
		return models.OrderResponse{}, err
	}

	loggerFrom(ctx, &s.logger).Info().
		Uint("user_id", userID).
		Uint("order_id", order.ID).
		Uint("amount", order.Amount).
		Msg("order placed")
	return order.ToResponse(lines), nil
}
