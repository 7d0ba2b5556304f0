// Package service implements the storefront use cases on top of the
// repository layer. Every error returned from here is an *apperr.Error.
package service

import (
	"Storefront/models"
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, offset, limit int) ([]models.Product, int64, error)
	All(ctx context.Context) ([]models.Product, error)
	ListBySeller(ctx context.Context, sellerID uint) ([]models.Product, error)
}

// ProductCache is optional; a nil cache sends every read to the database.
type ProductCache interface {
	Range(ctx context.Context, offset, limit int) ([]models.ProductResponse, int64, error)
	Put(ctx context.Context, product models.ProductResponse) error
	Rebuild(ctx context.Context, products []models.ProductResponse) error
}

type TokenIssuer interface {
	Issue(userID uint, role string) (string, time.Time, error)
}

// loggerFrom prefers the request logger stored in ctx.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
		return logger
	}
	return fallback
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
