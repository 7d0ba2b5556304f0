// Package repository holds the gorm-backed storage layer. Every method
// opens its own session from the request context; gorm errors are
// translated into apperr kinds so raw storage errors never leave here.
package repository

import (
	"Storefront/apperr"
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Store struct {
	db       *gorm.DB
	Users    *UserRepo
	Products *ProductRepo
	Orders   *OrderRepo
	Carts    *CartRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Users:    NewUserRepo(db),
		Products: NewProductRepo(db),
		Orders:   NewOrderRepo(db),
		Carts:    NewCartRepo(db),
	}
}

// Transaction runs fn against a Store bound to one database transaction.
// The transaction is rolled back when fn returns an error or panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Internal(err)
}

// translate maps a gorm error; notFound is returned for missing rows.
func translate(err error, notFound *apperr.Error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}
	if IsDuplicateKey(err) {
		return apperr.Conflict("Resource already exists", err)
	}
	return apperr.Internal(err)
}

// IsDuplicateKey reports a unique constraint violation from any of the
// supported dialects.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
