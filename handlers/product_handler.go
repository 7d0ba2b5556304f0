package handlers

import (
	"Storefront/middleware"
	"Storefront/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *uint  `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image" binding:"required,url"`
}

// GetProductListHandler pages through the catalog; limit is capped at 50.
func GetProductListHandler(c *gin.Context, catalog *service.CatalogService) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPageLimit)))
	if err != nil {
		respondBadRequest(c, "Invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		respondBadRequest(c, "Invalid offset")
		return
	}

	page, err := catalog.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Products fetched successfully",
		"status":     "success",
		"products":   page.Products,
		"totalCount": page.TotalCount,
	})
}

func GetProductDataHandler(c *gin.Context, catalog *service.CatalogService) {
	productID, ok := paramID(c, "productID")
	if !ok {
		return
	}

	product, err := catalog.Get(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product fetched successfully",
		"status":  "success",
		"product": product,
	})
}

// CreateProductHandler lists a product with the caller as seller.
func CreateProductHandler(c *gin.Context, catalog *service.CatalogService) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Name, description, price, category and a valid image URL are required")
		return
	}

	product, err := catalog.Create(c.Request.Context(), middleware.CurrentUserID(c), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"status":  "success",
		"product": product,
	})
}

func GetSellerProductsHandler(c *gin.Context, catalog *service.CatalogService) {
	sellerID, ok := paramID(c, "userID")
	if !ok {
		return
	}

	products, err := catalog.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Products fetched successfully",
		"status":   "success",
		"products": products,
	})
}
