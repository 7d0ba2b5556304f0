package handlers

import (
	"Storefront/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func GetUserListHandler(c *gin.Context, account *service.AccountService) {
	users, err := account.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users fetched successfully",
		"status":  "success",
		"users":   users,
	})
}

// UpdateOrderStatusHandler accepts any non-empty status text.
func UpdateOrderStatusHandler(c *gin.Context, orders *service.OrderService) {
	orderID, ok := paramID(c, "orderID")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Status is required")
		return
	}

	order, err := orders.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"status":  "success",
		"order":   order,
	})
}
