package handlers

import (
	"Storefront/middleware"
	"Storefront/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendOrderHandler checks out the caller's active cart.
func SendOrderHandler(c *gin.Context, carts *service.CartService) {
	order, err := carts.Checkout(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"status":  "success",
		"order":   order,
	})
}

func GetOrderListHandler(c *gin.Context, orders *service.OrderService) {
	list, err := orders.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders fetched successfully",
		"status":  "success",
		"orders":  list,
	})
}

func GetOrderDataHandler(c *gin.Context, orders *service.OrderService) {
	orderID, ok := paramID(c, "orderID")
	if !ok {
		return
	}

	order, err := orders.Get(c.Request.Context(), middleware.CurrentUserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order fetched successfully",
		"status":  "success",
		"order":   order,
	})
}
