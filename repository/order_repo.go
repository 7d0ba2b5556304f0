package repository

import (
	"Storefront/apperr"
	"Storefront/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
	return translate(err, nil)
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, translate(err, apperr.ErrOrderNotFound)
	}
	return &order, nil
}

// FindForUser treats an order owned by someone else as missing.
func (r *OrderRepo) FindForUser(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).
		Error
	if err != nil {
		return nil, translate(err, apperr.ErrOrderNotFound)
	}
	return &order, nil
}

func (r *OrderRepo) ListForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error
	return orders, translate(err, nil)
}

// UpdateStatus loads the order first; MySQL reports zero affected rows
// when the status is unchanged.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	order, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(order).Update("status", status).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return order, nil
}
