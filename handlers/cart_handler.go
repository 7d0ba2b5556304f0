package handlers

import (
	"Storefront/middleware"
	"Storefront/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID uint `json:"productID" binding:"required"`
	Quantity  uint `json:"quantity" binding:"required,min=1"`
}

type updateCartItemRequest struct {
	Quantity uint `json:"quantity" binding:"required,min=1"`
}

func GetCartHandler(c *gin.Context, carts *service.CartService) {
	summary, err := carts.Active(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart fetched successfully",
		"status":  "success",
		"items":   summary.Items,
		"total":   summary.Total,
	})
}

// AddToCartHandler adds to the existing line when the product is already
// in the cart.
func AddToCartHandler(c *gin.Context, carts *service.CartService) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "productID and a positive quantity are required")
		return
	}

	line, err := carts.Add(c.Request.Context(), middleware.CurrentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to cart",
		"status":  "success",
		"item":    line,
	})
}

func UpdateCartItemQuantityHandler(c *gin.Context, carts *service.CartService) {
	productID, ok := paramID(c, "productID")
	if !ok {
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "A positive quantity is required")
		return
	}

	line, err := carts.SetQuantity(c.Request.Context(), middleware.CurrentUserID(c), productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"status":  "success",
		"item":    line,
	})
}
