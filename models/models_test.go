package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserResponseOmitsPassword(t *testing.T) {
	user := User{
		Model:    gorm.Model{ID: 7},
		Name:     "Ava",
		Email:    "ava@x.com",
		Password: "$2a$10$abcdefghijklmnopqrstuv",
		Address:  "addr",
		Role:     RoleMember,
	}

	raw, err := json.Marshal(user.ToResponse())
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")
	require.NotContains(t, string(raw), user.Password)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, float64(7), decoded["id"])
	require.Equal(t, "member", decoded["role"])

	// the model itself never serializes its password either
	raw, err = json.Marshal(user)
	require.NoError(t, err)
	require.NotContains(t, string(raw), user.Password)
}

func TestProductResponseSummarizesSeller(t *testing.T) {
	sellerID := uint(3)
	product := Product{
		Model:  gorm.Model{ID: 1},
		Name:   "oraimo Watch ES 2",
		Price:  4500,
		UserID: &sellerID,
		Seller: &User{Model: gorm.Model{ID: sellerID}, Name: "Tom", Password: "hash"},
	}

	resp := product.ToResponse()
	require.Equal(t, &sellerID, resp.SellerID)
	require.NotNil(t, resp.Seller)
	require.Equal(t, UserSummary{ID: 3, Name: "Tom"}, *resp.Seller)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "hash")
}

func TestProductResponseWithoutSeller(t *testing.T) {
	product := Product{Model: gorm.Model{ID: 2}, Name: "ZL02 Smart Watch", Price: 2690}

	raw, err := json.Marshal(product.ToResponse())
	require.NoError(t, err)
	require.NotContains(t, string(raw), "seller")
}

func TestTotal(t *testing.T) {
	lines := []Cart{
		{Quantity: 2, Product: &Product{Price: 1900}},
		{Quantity: 1, Product: &Product{Price: 5999}},
		{Quantity: 4},
	}
	require.Equal(t, uint(2*1900+5999), Total(lines))
}

func TestCartBeforeSaveRejectsZeroQuantity(t *testing.T) {
	require.ErrorIs(t, (&Cart{}).BeforeSave(nil), ErrInvalidQuantity)
	require.NoError(t, (&Cart{Quantity: 1}).BeforeSave(nil))
}

func TestOrderResponseCarriesItems(t *testing.T) {
	userID := uint(5)
	order := Order{Model: gorm.Model{ID: 9}, Amount: 7800, Status: StatusPendingOrder, UserID: &userID}
	lines := []Cart{
		{Model: gorm.Model{ID: 1}, ProductID: 4, Quantity: 2, Product: &Product{Name: "Necklace", Price: 1900}},
		{Model: gorm.Model{ID: 2}, ProductID: 7, Quantity: 1, Product: &Product{Name: "BoomPop", Price: 4000}},
	}

	resp := order.ToResponse(lines)
	require.Len(t, resp.Items, 2)
	require.Equal(t, uint(3800), resp.Items[0].Subtotal)
	require.Equal(t, "Pending order", resp.Status)
}
