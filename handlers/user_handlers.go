package handlers

import (
	"Storefront/middleware"
	"Storefront/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupHandler answers 422 when the email is taken. The email format is
// checked by the service after trimming.
func SignupHandler(c *gin.Context, account *service.AccountService) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Name, a valid email, password and address are required")
		return
	}

	user, err := account.Signup(c.Request.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"status":  "success",
		"user":    user,
	})
}

func LoginHandler(c *gin.Context, account *service.AccountService) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required")
		return
	}

	result, err := account.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"status":       "success",
		"user":         result.User,
		"access_token": result.AccessToken,
		"expires_at":   result.ExpiresAt,
	})
}

func ProfileHandler(c *gin.Context, account *service.AccountService) {
	user, err := account.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile fetched successfully",
		"status":  "success",
		"user":    user,
	})
}
