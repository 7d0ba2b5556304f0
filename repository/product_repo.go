package repository

import (
	"Storefront/apperr"
	"Storefront/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
	return translate(err, nil)
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Seller").First(&product, id).Error
	if err != nil {
		return nil, translate(err, apperr.ErrProductNotFound)
	}
	return &product, nil
}

// List returns one page ordered by id plus the total row count.
func (r *ProductRepo) List(ctx context.Context, offset, limit int) ([]models.Product, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error
	if err != nil {
		return nil, 0, translate(err, nil)
	}

	var products []models.Product
	err = r.db.WithContext(ctx).
		Preload("Seller").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&products).
		Error
	return products, total, translate(err, nil)
}

// All loads the whole catalog, used to refill the product cache.
func (r *ProductRepo) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Preload("Seller").Order("id").Find(&products).Error
	return products, translate(err, nil)
}

func (r *ProductRepo) ListBySeller(ctx context.Context, sellerID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Where("user_id = ?", sellerID).
		Order("id").
		Find(&products).
		Error
	return products, translate(err, nil)
}
