package service

import (
	"Storefront/config"
	"Storefront/models"
	"Storefront/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*repository.Store, *gorm.DB) {
	t.Helper()

	db, err := config.OpenTestDatabase()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return repository.NewStore(db), db
}

func seedUser(t *testing.T, store *repository.Store, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Seed",
		Email:    email,
		Password: "not-a-real-digest",
		Address:  "1 Seed Street",
		Role:     models.RoleMember,
	}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

func seedProduct(t *testing.T, store *repository.Store, name string, price uint) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Category:    "Misc",
		Image:       "https://example.com/" + name + ".png",
	}
	require.NoError(t, store.Products.Create(context.Background(), product))
	return product
}
