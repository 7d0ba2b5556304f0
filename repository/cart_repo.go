package repository

import (
	"Storefront/apperr"
	"Storefront/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) Create(ctx context.Context, line *models.Cart) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(line).Error
	return translate(err, nil)
}

// UpdateQuantity changes the quantity of a line that is still unordered
// and reports whether it did. A line attached to an order is never
// touched. updated_at is written too so an unchanged quantity still
// counts as a matched row on MySQL.
func (r *CartRepo) UpdateQuantity(ctx context.Context, lineID, quantity uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ? AND order_id IS NULL", lineID).
		UpdateColumns(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, translate(result.Error, nil)
	}
	return result.RowsAffected > 0, nil
}

// FindActiveLine finds the unordered line of productID in the user's cart.
func (r *CartRepo) FindActiveLine(ctx context.Context, userID, productID uint) (*models.Cart, error) {
	return r.findActiveLine(r.db.WithContext(ctx), userID, productID)
}

// LockActiveLine is FindActiveLine with FOR UPDATE.
func (r *CartRepo) LockActiveLine(ctx context.Context, userID, productID uint) (*models.Cart, error) {
	return r.findActiveLine(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID, productID)
}

func (r *CartRepo) findActiveLine(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	var line models.Cart
	err := db.
		Where("user_id = ? AND product_id = ? AND order_id IS NULL", userID, productID).
		Preload("Product").
		First(&line).
		Error
	if err != nil {
		return nil, translate(err, apperr.ErrCartItemNotFound)
	}
	return &line, nil
}

func (r *CartRepo) Active(ctx context.Context, userID uint) ([]models.Cart, error) {
	var lines []models.Cart
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND order_id IS NULL", userID).
		Preload("Product").
		Order("id").
		Find(&lines).
		Error
	return lines, translate(err, nil)
}

// LockActive loads the active cart with FOR UPDATE so quantity changes
// wait until the surrounding transaction ends. SQLite has no row locks and
// drops the clause.
func (r *CartRepo) LockActive(ctx context.Context, userID uint) ([]models.Cart, error) {
	var lines []models.Cart
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Preload("Product").
		Order("id").
		Find(&lines).
		Error
	return lines, translate(err, nil)
}

func (r *CartRepo) ForOrder(ctx context.Context, orderID uint) ([]models.Cart, error) {
	var lines []models.Cart
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Preload("Product").
		Order("id").
		Find(&lines).
		Error
	return lines, translate(err, nil)
}

// AttachToOrder sets order_id on the given lines that are still unordered
// and reports how many rows changed. Hooks are skipped because only the
// order_id column is written.
func (r *CartRepo) AttachToOrder(ctx context.Context, lineIDs []uint, orderID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id IN ? AND order_id IS NULL", lineIDs).
		UpdateColumn("order_id", orderID)
	return result.RowsAffected, translate(result.Error, nil)
}
