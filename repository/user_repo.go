package repository

import (
	"Storefront/apperr"
	"Storefront/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create relies on the unique index on email; a duplicate is
// apperr.ErrEmailTaken.
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
	if IsDuplicateKey(err) {
		return apperr.Wrap(apperr.ErrEmailTaken, err)
	}
	return translate(err, nil)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err, apperr.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err, apperr.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, translate(err, nil)
}
