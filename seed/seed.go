package main

import (
	"Storefront/models"
	"Storefront/password"
	"Storefront/repository"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type catalogCache interface {
	Clear(ctx context.Context) error
}

type seeder struct {
	db            *gorm.DB
	hasher        password.Hasher
	adminPassword string
	logger        zerolog.Logger
	// cache is nil when redis is disabled
	cache catalogCache
}

type seedCounts struct {
	Users    int
	Products int
	Orders   int
}

// parseAmount turns "55,499" into 55499.
func parseAmount(s string) (uint, error) {
	amount, err := strconv.ParseUint(strings.ReplaceAll(s, ",", ""), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return uint(amount), nil
}

// clearTables removes all rows, children first.
func clearTables(tx *gorm.DB) error {
	for _, model := range []any{&models.Cart{}, &models.Order{}, &models.Product{}, &models.User{}} {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) run(ctx context.Context) (seedCounts, error) {
	var counts seedCounts

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s.logger.Info().Msg("deleting data")
		if err := clearTables(tx); err != nil {
			return err
		}
		store := repository.NewStore(tx)

		s.logger.Info().Msg("creating users")
		for _, u := range users {
			if err := s.createUser(ctx, store, u, models.RoleMember); err != nil {
				return err
			}
			counts.Users++
		}
		if s.adminPassword != "" {
			admin := seedUser{"Admin", "admin@gmail.com", s.adminPassword, "head office"}
			if err := s.createUser(ctx, store, admin, models.RoleAdmin); err != nil {
				return err
			}
			counts.Users++
		} else {
			s.logger.Warn().Msg("no admin password given, skipping the admin user")
		}

		s.logger.Info().Msg("creating products")
		for _, p := range products {
			price, err := parseAmount(p.Price)
			if err != nil {
				return err
			}
			product := models.Product{
				Name:        p.Name,
				Description: p.Description,
				Price:       price,
				Category:    p.Category,
				Image:       p.Image,
			}
			if err := store.Products.Create(ctx, &product); err != nil {
				return err
			}
			counts.Products++
		}

		s.logger.Info().Msg("creating orders")
		for _, o := range orders {
			amount, err := parseAmount(o.Amount)
			if err != nil {
				return err
			}
			order := models.Order{Amount: amount, Status: o.Status}
			if err := store.Orders.Create(ctx, &order); err != nil {
				return err
			}
			counts.Orders++
		}
		return nil
	})
	if err != nil {
		return counts, err
	}

	// product ids changed; the cached catalog would point at deleted rows
	if s.cache != nil {
		if err := s.cache.Clear(ctx); err != nil {
			return counts, fmt.Errorf("clear product cache: %w", err)
		}
		s.logger.Info().Msg("product cache cleared")
	}
	return counts, nil
}

func (s *seeder) createUser(ctx context.Context, store *repository.Store, u seedUser, role string) error {
	hashed, err := s.hasher.Hash(u.Password)
	if err != nil {
		return err
	}
	return store.Users.Create(ctx, &models.User{
		Name:     u.Name,
		Email:    u.Email,
		Password: hashed,
		Address:  u.Address,
		Role:     role,
	})
}
